package store

// Event types emitted after successful mutations. Subscribers use them to
// push live updates to connected clients; nothing in the store depends on
// anyone listening.
const (
	EventProductCreated = "product_created"
	EventProductUpdated = "product_updated"
	EventOrderCreated   = "order_created"
	EventOrderUpdated   = "order_updated"
	EventReviewCreated  = "review_created"
	EventMessageCreated = "message_created"
)

// Event describes a single committed state change.
type Event struct {
	Type string `json:"type"`
	// ID of the entity the event is about.
	EntityID string `json:"entity_id"`
	// ReceiverID is set on message events so the hub can deliver the
	// message to the addressee only.
	ReceiverID string `json:"receiver_id,omitempty"`
	// Payload carries the changed entity for broadcast.
	Payload interface{} `json:"payload,omitempty"`
}

// Notifier receives events after each successful mutation. Publish must not
// block; the store calls it synchronously from mutation paths.
type Notifier interface {
	Publish(Event)
}

// NopNotifier discards all events. Used when no live-update hub is attached.
type NopNotifier struct{}

func (NopNotifier) Publish(Event) {}
