package app

import (
	"time"

	"github.com/mzerara/storedash/internal/models"
	"github.com/mzerara/storedash/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// ReportLoadedMsg contains the sales report and normalized orders.
type ReportLoadedMsg struct {
	Report *models.SalesReport
	Orders []models.Order
}

// CatalogLoadedMsg contains loaded products and customers.
type CatalogLoadedMsg struct {
	Products  []models.Product
	Customers []models.Customer
}

// StatsLoadedMsg contains loaded statistics.
type StatsLoadedMsg struct {
	Stats services.StatsEvent
}

// RefreshMsg requests a refresh of data.
type RefreshMsg struct {
	Resource string // "all", "orders", "catalog"
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

