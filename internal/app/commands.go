package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mzerara/storedash/internal/services"
)

const (
	// DefaultTickInterval is the default interval between ticks.
	DefaultTickInterval = 2 * time.Second

	// DefaultNotificationDuration is the default duration for notifications.
	DefaultNotificationDuration = 5 * time.Second

	// QuickNotificationDuration is for brief notifications.
	QuickNotificationDuration = 3 * time.Second

	// LongNotificationDuration is for important notifications.
	LongNotificationDuration = 10 * time.Second
)

// tickCmd returns a command that sends a TickMsg after the specified interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// defaultTickCmd returns a command that sends a TickMsg after the default interval.
func defaultTickCmd() tea.Cmd {
	return tickCmd(DefaultTickInterval)
}

// loadInitialData returns a command that loads all cached data.
func loadInitialData(mgr *services.Manager) tea.Cmd {
	return tea.Batch(
		loadReportCmd(mgr),
		loadCatalogCmd(mgr),
		loadStatsCmd(mgr),
	)
}

// loadReportCmd returns a command that loads the cached sales report.
func loadReportCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return ReportLoadedMsg{
			Report: mgr.GetReport(),
			Orders: mgr.GetOrders(),
		}
	}
}

// loadCatalogCmd returns a command that loads cached products and customers.
func loadCatalogCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return CatalogLoadedMsg{
			Products:  mgr.GetProducts(),
			Customers: mgr.GetCustomers(),
		}
	}
}

// loadStatsCmd returns a command that loads statistics.
func loadStatsCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		return StatsLoadedMsg{Stats: mgr.GetStats()}
	}
}

// refreshAllCmd returns a command that triggers a background refresh.
func refreshAllCmd(mgr *services.Manager) tea.Cmd {
	return func() tea.Msg {
		mgr.Refresh()
		return StartLoadingMsg{Resource: "orders"}
	}
}

// subscribeToServicesCmd returns a command that subscribes to service events.
func subscribeToServicesCmd(mgr *services.Manager) tea.Cmd {
	ch, _ := mgr.Subscribe()
	return func() tea.Msg {
		return SubscriptionEventMsg{Channel: ch}
	}
}

// waitForServiceEventCmd returns a command that waits for the next service event.
func waitForServiceEventCmd(ch <-chan services.ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return ServiceEventMsg{Event: event}
	}
}

// clearNotificationCmd returns a command that removes a notification after a delay.
func clearNotificationCmd(id string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return RemoveNotificationMsg{ID: id}
	})
}

// notifySuccessCmd returns a command that adds a success notification.
func notifySuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationSuccess,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyErrorCmd returns a command that adds an error notification.
func notifyErrorCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationError,
			Message:  message,
			Duration: LongNotificationDuration,
		}
	}
}

// notifyWarningCmd returns a command that adds a warning notification.
func notifyWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationWarning,
			Message:  message,
			Duration: DefaultNotificationDuration,
		}
	}
}

// notifyInfoCmd returns a command that adds an info notification.
func notifyInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return AddNotificationMsg{
			Type:     NotificationInfo,
			Message:  message,
			Duration: QuickNotificationDuration,
		}
	}
}

// Commands provides a public interface to the command functions.
type Commands struct {
	manager *services.Manager
}

// NewCommands creates a new Commands instance.
func NewCommands(mgr *services.Manager) *Commands {
	return &Commands{manager: mgr}
}

// Tick returns a tick command with the specified interval.
func (c *Commands) Tick(interval time.Duration) tea.Cmd {
	return tickCmd(interval)
}

// LoadInitialData returns a command that loads all cached data.
func (c *Commands) LoadInitialData() tea.Cmd {
	return loadInitialData(c.manager)
}

// LoadReport returns a command that loads the cached sales report.
func (c *Commands) LoadReport() tea.Cmd {
	return loadReportCmd(c.manager)
}

// LoadCatalog returns a command that loads cached products and customers.
func (c *Commands) LoadCatalog() tea.Cmd {
	return loadCatalogCmd(c.manager)
}

// LoadStats returns a command that loads statistics.
func (c *Commands) LoadStats() tea.Cmd {
	return loadStatsCmd(c.manager)
}

// RefreshAll returns a command that triggers a background refresh.
func (c *Commands) RefreshAll() tea.Cmd {
	return refreshAllCmd(c.manager)
}

// NotifySuccess returns a command that adds a success notification.
func (c *Commands) NotifySuccess(message string) tea.Cmd {
	return notifySuccessCmd(message)
}

// NotifyError returns a command that adds an error notification.
func (c *Commands) NotifyError(message string) tea.Cmd {
	return notifyErrorCmd(message)
}

// NotifyWarning returns a command that adds a warning notification.
func (c *Commands) NotifyWarning(message string) tea.Cmd {
	return notifyWarningCmd(message)
}

// NotifyInfo returns a command that adds an info notification.
func (c *Commands) NotifyInfo(message string) tea.Cmd {
	return notifyInfoCmd(message)
}
