// Package components provides reusable UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/mzerara/storedash/internal/ui/styles"
)

// sparkLevels are the block characters a sparkline quantizes values into,
// lowest to highest.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// RenderLineChart plots one revenue series as an ASCII line chart.
func RenderLineChart(data []float64, width, height int, caption string) string {
	if len(data) == 0 {
		return styles.HelpStyle.Render("No data available")
	}

	return asciigraph.Plot(data,
		asciigraph.Width(max(width, 20)),
		asciigraph.Height(max(height, 3)),
		asciigraph.Caption(caption),
	)
}

// RenderBarChart lays out values as labelled horizontal bars, scaled against
// the largest value.
func RenderBarChart(values []float64, labels []string, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}

	// Label, bar and printed value share the width.
	barWidth := max(width-labelWidth-10, 10)

	lines := make([]string, 0, len(values))
	for i, v := range values {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		bar := strings.Repeat("█", max(int(v/maxVal*float64(barWidth)), 0))
		lines = append(lines, fmt.Sprintf("%*s │%s %.0f", labelWidth, label, bar, v))
	}

	return strings.Join(lines, "\n")
}

// RenderSparkline compresses a series into a single line of block characters.
// Series longer than width are downsampled.
func RenderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	maxVal := 0.0
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := max(float64(len(values))/float64(width), 1)

	var b strings.Builder
	for i := 0; i < width; i++ {
		idx := int(float64(i) * step)
		if idx >= len(values) {
			break
		}
		level := int(values[idx] / maxVal * float64(len(sparkLevels)-1))
		b.WriteRune(sparkLevels[min(max(level, 0), len(sparkLevels)-1)])
	}

	return b.String()
}
