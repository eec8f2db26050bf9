// Package catalog provides product and customer fetching and caching.
package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mzerara/storedash/internal/logger"
	"github.com/mzerara/storedash/internal/models"
)

// Source supplies products and customers from the store API.
type Source interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	FetchCustomers(ctx context.Context) ([]models.Customer, error)
}

// Event represents a catalog service event.
type Event struct {
	Type      EventType
	Products  []models.Product
	Customers []models.Customer
	Error     error
}

// EventType defines the type of catalog event.
type EventType int

const (
	// EventCatalogUpdated indicates fresh products and customers are cached.
	EventCatalogUpdated EventType = iota
	// EventCatalogError indicates the fetch failed.
	EventCatalogError
)

// Service caches the store's products and customers.
type Service struct {
	source    Source
	interval  time.Duration
	products  []models.Product
	customers []models.Customer
	eventChan chan Event
	stopChan  chan struct{}
	mu        sync.RWMutex
}

// New creates a new catalog service and starts background polling.
func New(source Source, interval time.Duration) *Service {
	if interval == 0 {
		interval = 5 * time.Minute
	}

	s := &Service{
		source:    source,
		interval:  interval,
		eventChan: make(chan Event, 100),
		stopChan:  make(chan struct{}),
	}

	go s.poll()

	return s
}

// Events returns the event channel.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// GetProducts returns the cached products.
func (s *Service) GetProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// GetCustomers returns the cached customers.
func (s *Service) GetCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, len(s.customers))
	copy(customers, s.customers)
	return customers
}

// CategoryNames returns the distinct category names across cached products,
// sorted alphabetically.
func (s *Service) CategoryNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, p := range s.products {
		for _, c := range p.Categories {
			if c.Name != "" {
				seen[c.Name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Refresh fetches products and customers from the store.
func (s *Service) Refresh() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	products, err := s.source.FetchProducts(ctx)
	if err != nil {
		logger.Error("failed to fetch products", "error", err)
		s.sendEvent(Event{Type: EventCatalogError, Error: err})
		return err
	}

	customers, err := s.source.FetchCustomers(ctx)
	if err != nil {
		logger.Error("failed to fetch customers", "error", err)
		s.sendEvent(Event{Type: EventCatalogError, Error: err})
		return err
	}

	s.mu.Lock()
	s.products = products
	s.customers = customers
	s.mu.Unlock()

	s.sendEvent(Event{Type: EventCatalogUpdated, Products: products, Customers: customers})
	return nil
}

// poll runs the background polling goroutine.
func (s *Service) poll() {
	if err := s.Refresh(); err != nil {
		logger.Error("initial catalog fetch failed", "error", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.Refresh(); err != nil {
				logger.Error("scheduled catalog fetch failed", "error", err)
			}
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

// Close stops the service.
func (s *Service) Close() error {
	close(s.stopChan)
	return nil
}
