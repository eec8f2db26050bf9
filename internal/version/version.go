// Package version provides build version information and runtime metadata.
package version

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// These are set via ldflags at build time.
	Version = ""
	Commit  = ""
	Date    = ""

	once sync.Once

	// execCommand is swapped out in tests.
	execCommand = exec.CommandContext
)

func ensureInitialized() {
	once.Do(func() {
		if Date == "" {
			Date = time.Now().Format("2006-01-02")
		}
		if Commit == "" {
			Commit = getGitCommit()
		}
		if Version == "" {
			Version = getGitVersion()
		}
	})
}

// Reset clears cached version info so it is recomputed. Test helper.
func Reset() {
	Version = ""
	Commit = ""
	Date = ""
	once = sync.Once{}
}

func getGitCommit() string {
	cmd := execCommand(context.Background(), "git", "describe", "--always", "--dirty")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "unknown"
	}
	return strings.TrimSpace(out.String())
}

func getGitVersion() string {
	cmd := execCommand(context.Background(), "git", "describe", "--tags", "--abbrev=0")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err == nil {
		v := strings.TrimSpace(out.String())
		if v != "" {
			return v
		}
	}
	return "dev"
}

// GetVersion returns the resolved version string.
func GetVersion() string {
	ensureInitialized()
	return Version
}

// GetCommit returns the resolved commit hash.
func GetCommit() string {
	ensureInitialized()
	return Commit
}

// GetDate returns the build date.
func GetDate() string {
	ensureInitialized()
	return Date
}

// Info returns a single-line description of the build.
func Info() string {
	ensureInitialized()
	return fmt.Sprintf("storedash %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
