// Package orders provides order fetching, normalization and report caching.
package orders

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mzerara/storedash/internal/analytics"
	"github.com/mzerara/storedash/internal/logger"
	"github.com/mzerara/storedash/internal/models"
)

// Source supplies raw orders, either from the store API or a local file.
type Source interface {
	FetchOrders(ctx context.Context) ([]models.RawOrder, error)
}

// Event represents an orders service event.
type Event struct {
	Type   EventType
	Report *models.SalesReport
	Orders []models.Order
	Error  error
}

// EventType defines the type of orders event.
type EventType int

const (
	// EventReportUpdated indicates a fresh sales report is available.
	EventReportUpdated EventType = iota
	// EventRefreshing indicates a fetch is in progress.
	EventRefreshing
	// EventFetchError indicates the fetch failed; the cached report stays valid.
	EventFetchError
)

// Config holds configuration for the orders service.
type Config struct {
	PollInterval time.Duration
	TopProducts  int
	// WatchPath, when set, is a local orders file to reload on change.
	WatchPath string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PollInterval: 5 * time.Minute,
		TopProducts:  analytics.DefaultTopProducts,
	}
}

// Service fetches orders, runs them through the analytics pipeline and caches
// the latest report.
type Service struct {
	source        Source
	config        Config
	report        *models.SalesReport
	orders        []models.Order
	eventChan     chan Event
	stopChan      chan struct{}
	watcher       *fsnotify.Watcher
	debounceTimer *time.Timer
	mu            sync.RWMutex
	closeOnce     sync.Once
}

// New creates a new orders service and starts background polling.
func New(source Source, config Config) (*Service, error) {
	if config.PollInterval == 0 {
		config = DefaultConfig()
	}

	s := &Service{
		source:    source,
		config:    config,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	if config.WatchPath != "" {
		if err := s.startWatcher(config.WatchPath); err != nil {
			return nil, err
		}
	}

	go s.poll()

	return s, nil
}

// Events returns the event channel.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// GetReport returns the cached sales report, or nil before the first fetch.
func (s *Service) GetReport() *models.SalesReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// GetOrders returns the cached normalized orders.
func (s *Service) GetOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// Refresh fetches orders and rebuilds the report. On fetch failure the
// previous report is kept and an error event is emitted.
func (s *Service) Refresh() (*models.SalesReport, error) {
	s.sendEvent(Event{Type: EventRefreshing})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	raw, err := s.source.FetchOrders(ctx)
	if err != nil {
		logger.Error("failed to fetch orders", "error", err)
		s.sendEvent(Event{Type: EventFetchError, Error: err})
		return nil, err
	}

	report, normalized := analytics.BuildReport(raw, s.config.TopProducts, time.Now())
	for _, skip := range report.Skipped {
		logger.Warn("skipped malformed order", "order_id", skip.OrderID, "reason", skip.Reason)
	}
	for _, warn := range report.Warnings {
		logger.Warn("dropped unnamed line item", "order_id", warn.OrderID, "index", warn.Index)
	}

	s.mu.Lock()
	s.report = report
	s.orders = normalized
	s.mu.Unlock()

	s.sendEvent(Event{Type: EventReportUpdated, Report: report, Orders: normalized})
	return report, nil
}

// poll runs the background polling goroutine.
func (s *Service) poll() {
	// Initial fetch
	if _, err := s.Refresh(); err != nil {
		logger.Error("initial order fetch failed", "error", err)
	}

	ticker := time.NewTicker(s.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.Refresh(); err != nil {
				logger.Error("scheduled order fetch failed", "error", err)
			}
		case <-s.stopChan:
			return
		}
	}
}

// startWatcher watches the local orders file for external changes.
func (s *Service) startWatcher(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	s.watcher = watcher

	// Watch the directory to catch file replacement via rename.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return err
	}

	go s.watchLoop(path)
	return nil
}

// watchLoop handles file system events with debouncing.
func (s *Service) watchLoop(path string) {
	const debounceInterval = 100 * time.Millisecond

	for {
		select {
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				// The timer is also stopped from Close, so take the lock.
				s.mu.Lock()
				if s.debounceTimer != nil {
					s.debounceTimer.Stop()
				}
				s.debounceTimer = time.AfterFunc(debounceInterval, func() {
					if _, err := s.Refresh(); err != nil {
						logger.Error("reload after file change failed", "error", err)
					}
				})
				s.mu.Unlock()
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.sendEvent(Event{Type: EventFetchError, Error: err})

		case <-s.stopChan:
			return
		}
	}
}

// sendEvent sends an event to the event channel non-blocking.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		// Channel full, drop oldest
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the service and cleans up resources. Safe to call more than once.
func (s *Service) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.stopChan)

		s.mu.Lock()
		if s.debounceTimer != nil {
			s.debounceTimer.Stop()
		}
		s.mu.Unlock()

		if s.watcher != nil {
			err = s.watcher.Close()
		}
	})
	return err
}
