// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/services"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial bool
	Orders  bool
	Catalog bool
}

// State holds shared application state guarded by a mutex.
type State struct {
	mu sync.RWMutex

	report    *models.SalesReport
	orders    []models.Order
	products  []models.Product
	customers []models.Customer
	stats     *services.StatsEvent

	Loading LoadingState

	lastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "orders":
		s.Loading.Orders = loading
	case "catalog":
		s.Loading.Catalog = loading
	}
}

// IsInitialLoading returns true until the first report has arrived.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial || s.Loading.Orders || s.Loading.Catalog
}

// SetReport updates the sales report and normalized orders.
func (s *State) SetReport(report *models.SalesReport, orders []models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report = report
	s.orders = orders
	s.lastUpdated = time.Now()
}

// GetReport returns the current sales report, or nil before the first fetch.
func (s *State) GetReport() *models.SalesReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// GetOrders returns a copy of the normalized orders.
func (s *State) GetOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// SetCatalog updates products and customers.
func (s *State) SetCatalog(products []models.Product, customers []models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = products
	s.customers = customers
	s.lastUpdated = time.Now()
}

// GetProducts returns a copy of the products list.
func (s *State) GetProducts() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, len(s.products))
	copy(products, s.products)
	return products
}

// GetCustomers returns a copy of the customers list.
func (s *State) GetCustomers() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customers := make([]models.Customer, len(s.customers))
	copy(customers, s.customers)
	return customers
}

// SetStats updates the statistics.
func (s *State) SetStats(stats services.StatsEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = &stats
}

// GetStats returns the current statistics.
func (s *State) GetStats() *services.StatsEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.lastUpdated)
}
