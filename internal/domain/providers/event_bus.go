package providers

import (
	"context"

	"github.com/Prism-Clinical/prism-graphql-sub006/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to
// pathway lifecycle events
type EventBus interface {
	// Publish publishes an event to all subscribers
	Publish(ctx context.Context, channel string, event *entities.PathwayEvent) error

	// Subscribe subscribes to events on a channel
	Subscribe(ctx context.Context, channel string) (<-chan *entities.PathwayEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// EventChannelPathwayUpdates is the channel carrying all pathway changes
const EventChannelPathwayUpdates = "pathway:updates"

// EventChannelPathwayPrefix is the prefix for pathway-specific channels
const EventChannelPathwayPrefix = "pathway:"

// GetPathwayChannel returns the channel name for a specific pathway
func GetPathwayChannel(pathwayID string) string {
	return EventChannelPathwayPrefix + pathwayID
}
