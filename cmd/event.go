package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/clovera/admin-api/internal/core/events"
	"github.com/clovera/admin-api/internal/notification"
	"github.com/clovera/admin-api/pkg/logger"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:   "event",
	Short: "Event management commands",
	Long:  `Manage events: publish test events, inspect the notification wiring`,
}

var publishEventCmd = &cobra.Command{
	Use:   "publish [event-type]",
	Short: "Publish a test event",
	Long:  `Publish a test event through the notification bus for debugging`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		publishTestEvent(args[0])
	},
}

func publishTestEvent(eventType string) {
	log := logger.LoggerWrapper()

	bus := events.NewEventBus(log)
	notification.NewNotifier(log).Register(bus)

	event := events.BaseEvent{
		ID:        fmt.Sprintf("test-%d", time.Now().UnixNano()),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      map[string]interface{}{"source": "cli"},
	}

	if err := bus.PublishSync(context.Background(), event); err != nil {
		log.Error("test event failed", "error", err)
		return
	}
	log.Info("test event published", "event_type", eventType)
}

func init() {
	eventCmd.AddCommand(publishEventCmd)
}
