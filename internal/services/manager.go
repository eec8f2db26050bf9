// Package services provides service orchestration for the TUI.
package services

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/mzerara/storedash/internal/config"
	"github.com/mzerara/storedash/internal/db"
	"github.com/mzerara/storedash/internal/logger"
	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/services/catalog"
	"github.com/mzerara/storedash/internal/services/orders"
	"github.com/mzerara/storedash/internal/store"
)

type (
	// ReportUpdatedEvent is emitted when a fresh sales report is available.
	ReportUpdatedEvent struct {
		Report *models.SalesReport
		Orders []models.Order
	}

	// CatalogUpdatedEvent is emitted when products and customers are refreshed.
	CatalogUpdatedEvent struct {
		Products  []models.Product
		Customers []models.Customer
	}

	// RefreshingEvent is emitted when a fetch starts.
	RefreshingEvent struct{}

	// ErrorEvent is emitted when an error occurs in any service.
	ErrorEvent struct {
		Service string
		Error   error
	}

	// StatsEvent is emitted when global statistics change.
	StatsEvent struct {
		OrderCount    int
		ProductCount  int
		CustomerCount int
		SkippedCount  int
	}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (ReportUpdatedEvent) isServiceEvent()  {}
func (CatalogUpdatedEvent) isServiceEvent() {}
func (RefreshingEvent) isServiceEvent()     {}
func (ErrorEvent) isServiceEvent()          {}
func (StatsEvent) isServiceEvent()          {}

// fileSource adapts a local orders file to the orders.Source interface.
type fileSource struct {
	path string
}

func (f fileSource) FetchOrders(_ context.Context) ([]models.RawOrder, error) {
	return store.ReadOrdersFile(f.path)
}

// Manager orchestrates services and event routing.
type Manager struct {
	mu          sync.RWMutex
	orders      *orders.Service
	catalog     *catalog.Service
	database    *db.DB
	cfg         *config.Config
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent
	fetchFailed bool
}

// NewManager creates a new service manager.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	ordersConfig := orders.Config{
		PollInterval: cfg.RefreshInterval,
		TopProducts:  cfg.TopProducts,
	}

	var source orders.Source
	if cfg.Offline() {
		source = fileSource{path: cfg.OrdersPath}
		ordersConfig.WatchPath = cfg.OrdersPath
	} else {
		client := store.NewClient(cfg.StoreBaseURL, cfg.ConsumerKey, cfg.ConsumerSecret)
		source = client
		m.catalog = catalog.New(client, cfg.RefreshInterval)
	}

	m.orders, err = orders.New(source, ordersConfig)
	if err != nil {
		_ = m.database.Close()
		return nil, fmt.Errorf("failed to start orders service: %w", err)
	}

	go m.routeEvents()

	return m, nil
}

// routeEvents routes events from individual services to subscribers.
func (m *Manager) routeEvents() {
	var catalogEvents <-chan catalog.Event
	if m.catalog != nil {
		catalogEvents = m.catalog.Events()
	}

	for {
		select {
		case event := <-m.orders.Events():
			m.handleOrdersEvent(event)

		case event := <-catalogEvents:
			m.handleCatalogEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleOrdersEvent(event orders.Event) {
	switch event.Type {
	case orders.EventReportUpdated:
		m.mu.Lock()
		recovered := m.fetchFailed
		m.fetchFailed = false
		m.mu.Unlock()

		m.journalSnapshot(event.Report)

		m.broadcast(ReportUpdatedEvent{Report: event.Report, Orders: event.Orders})
		m.broadcast(m.GetStats())

		if recovered {
			_ = beeep.Notify("storedash", "Store connection restored.", "")
		}

	case orders.EventRefreshing:
		m.broadcast(RefreshingEvent{})

	case orders.EventFetchError:
		m.mu.Lock()
		firstFailure := !m.fetchFailed
		m.fetchFailed = true
		m.mu.Unlock()

		// Notify only on the first failure of a streak
		if firstFailure {
			_ = beeep.Notify("storedash", fmt.Sprintf("Order fetch failed: %v", event.Error), "")
		}

		m.broadcast(ErrorEvent{Service: "orders", Error: event.Error})
	}
}

func (m *Manager) handleCatalogEvent(event catalog.Event) {
	switch event.Type {
	case catalog.EventCatalogUpdated:
		m.broadcast(CatalogUpdatedEvent{Products: event.Products, Customers: event.Customers})
		m.broadcast(m.GetStats())

	case catalog.EventCatalogError:
		m.broadcast(ErrorEvent{Service: "catalog", Error: event.Error})
	}
}

// journalSnapshot persists a fetch result for revenue history.
func (m *Manager) journalSnapshot(report *models.SalesReport) {
	if m.database == nil || report == nil {
		return
	}

	source := "api"
	if m.cfg.Offline() {
		source = "file"
	}

	if _, err := m.database.InsertSnapshot(report, source); err != nil {
		logger.Error("failed to journal snapshot", "error", err)
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	// Send to main event channel
	select {
	case m.eventChan <- event:
	default:
	}

	// Send to subscribers
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, waitForEvent(ch)
}

// waitForEvent returns a tea.Cmd that waits for the next event.
func waitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return waitForEvent(ch)
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// GetReport returns the cached sales report, or nil before the first fetch.
func (m *Manager) GetReport() *models.SalesReport {
	return m.orders.GetReport()
}

// GetOrders returns the cached normalized orders.
func (m *Manager) GetOrders() []models.Order {
	return m.orders.GetOrders()
}

// GetProducts returns the cached products, or nil in offline mode.
func (m *Manager) GetProducts() []models.Product {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.GetProducts()
}

// GetCustomers returns the cached customers, or nil in offline mode.
func (m *Manager) GetCustomers() []models.Customer {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.GetCustomers()
}

// CategoryNames returns distinct product category names.
func (m *Manager) CategoryNames() []string {
	if m.catalog == nil {
		return nil
	}
	return m.catalog.CategoryNames()
}

// Refresh forces a refresh of orders and the catalog.
func (m *Manager) Refresh() {
	go func() {
		if _, err := m.orders.Refresh(); err != nil {
			logger.Error("manual order refresh failed", "error", err)
		}
	}()

	if m.catalog != nil {
		go func() {
			if err := m.catalog.Refresh(); err != nil {
				logger.Error("manual catalog refresh failed", "error", err)
			}
		}()
	}
}

// GetStats returns aggregated statistics.
func (m *Manager) GetStats() StatsEvent {
	stats := StatsEvent{
		ProductCount:  len(m.GetProducts()),
		CustomerCount: len(m.GetCustomers()),
	}

	if report := m.orders.GetReport(); report != nil {
		stats.OrderCount = report.OrderCount
		stats.SkippedCount = report.SkippedCount()
	}

	return stats
}

// Orders returns the orders service.
func (m *Manager) Orders() *orders.Service {
	return m.orders
}

// Catalog returns the catalog service, or nil in offline mode.
func (m *Manager) Catalog() *catalog.Service {
	return m.catalog
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Config returns the loaded configuration.
func (m *Manager) Config() *config.Config {
	return m.cfg
}

// Close closes the manager and all its services.
func (m *Manager) Close() error {
	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if err := m.orders.Close(); err != nil {
		errs = append(errs, err)
	}

	if m.catalog != nil {
		if err := m.catalog.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
