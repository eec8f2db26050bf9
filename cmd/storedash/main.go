// Package main is the entry point for the storedash TUI application.
// It initializes configuration, services, and runs the Bubble Tea program.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzerara/storedash/internal/app"
	"github.com/mzerara/storedash/internal/config"
	"github.com/mzerara/storedash/internal/logger"
	"github.com/mzerara/storedash/internal/services"
	"github.com/mzerara/storedash/internal/ui/tabs/customers"
	"github.com/mzerara/storedash/internal/ui/tabs/info"
	"github.com/mzerara/storedash/internal/ui/tabs/orders"
	"github.com/mzerara/storedash/internal/ui/tabs/overview"
	"github.com/mzerara/storedash/internal/ui/tabs/products"
	"github.com/mzerara/storedash/internal/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "-v" || os.Args[1] == "--version") {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "-h" || os.Args[1] == "--help") {
		printUsage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run contains the main application logic, separated for cleaner error handling.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.SetLevel(cfg.LogLevel)

	// Start the background services: order fetching, catalog fetching
	// and the snapshot journal.
	svcManager, err := services.NewManager(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	defer func() {
		if closeErr := svcManager.Close(); closeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error closing services: %v\n", closeErr)
		}
	}()

	model := app.NewModel(svcManager)

	// Each tab receives the shared application state for consistent data access.
	state := model.GetState()
	tabs := []app.Tab{
		overview.New(state),
		orders.New(state),
		products.New(state),
		customers.New(state),
		info.New(state, cfg, svcManager.Database()),
	}
	model.SetTabs(tabs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	go func() {
		<-sigChan
		p.Send(tea.Quit())
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// printUsage prints the command-line usage information.
func printUsage() {
	fmt.Println(`storedash - WooCommerce sales dashboard for the terminal

Usage:
  storedash [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Keyboard Shortcuts:
  1-5             Switch between tabs (Overview, Orders, Products, Customers, Info)
  Tab/Shift+Tab   Navigate between tabs
  j/k, Up/Down    Navigate lists
  /               Search (Orders, Customers)
  s               Cycle status filter (Orders)
  c               Category filters (Products)
  Enter           Select/confirm
  r               Refresh data
  ?               Toggle help
  q, Ctrl+C       Quit

Environment Variables:
  STORE_BASE_URL         WooCommerce store URL (e.g. https://shop.example.com)
  STORE_CONSUMER_KEY     WooCommerce REST API consumer key
  STORE_CONSUMER_SECRET  WooCommerce REST API consumer secret
  ORDERS_PATH            Read orders from a JSON file instead of the API
  DATABASE_PATH          SQLite database path
  REFRESH_INTERVAL       Order polling interval (default: 5m)
  TOP_PRODUCT_LIMIT      Size of the top products ranking (default: 5)
  LOG_LEVEL              Log verbosity (debug, info, warn, error)

Credentials are read from the environment or a .env file and are never
written to disk by the application. Do not commit them.

Configuration:
  The application looks for .env files in the following locations:
  - Current directory
  - ~/.config/storedash/.env
  - ~/.storedash/.env`)
}
