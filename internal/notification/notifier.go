// Package notification is the server-side stand-in for the console's toast
// messages: it subscribes to the state-machine events and surfaces each one
// as a structured operator notice.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clovera/admin-api/internal/core/events"
)

type Notifier struct {
	logger *slog.Logger
}

func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{logger: logger}
}

// Register subscribes the notifier to every transition event.
func (n *Notifier) Register(bus *events.EventBus) {
	bus.Subscribe(events.TypeUserApproved, n.handle(func(data map[string]interface{}) string {
		return fmt.Sprintf("User has been approved as %v", data["role"])
	}))
	bus.Subscribe(events.TypeUserRejected, n.handle(func(map[string]interface{}) string {
		return "User has been rejected"
	}))
	bus.Subscribe(events.TypeUserBanned, n.handle(func(map[string]interface{}) string {
		return "User has been banned"
	}))
	bus.Subscribe(events.TypeUserUnbanned, n.handle(func(map[string]interface{}) string {
		return "User has been unbanned"
	}))
	bus.Subscribe(events.TypeDocumentVerified, n.handle(func(map[string]interface{}) string {
		return "Document has been verified"
	}))
	bus.Subscribe(events.TypeIssueStatusChanged, n.handle(func(data map[string]interface{}) string {
		return fmt.Sprintf("Issue status updated to %v", data["status"])
	}))
	bus.Subscribe(events.TypeIssueReplied, n.handle(func(map[string]interface{}) string {
		return "Reply sent successfully"
	}))
	bus.Subscribe(events.TypeAdminLoggedIn, n.handle(func(map[string]interface{}) string {
		return "Login successful"
	}))
	bus.Subscribe(events.TypeAdminLoggedOut, n.handle(func(map[string]interface{}) string {
		return "Logged out successfully"
	}))
}

func (n *Notifier) handle(message func(data map[string]interface{}) string) events.Handler {
	return func(ctx context.Context, event events.Event) error {
		data, _ := event.Payload().(map[string]interface{})
		n.logger.Info("notification",
			"message", message(data),
			"event_type", event.EventType(),
			"event_id", event.EventID(),
		)
		return nil
	}
}
