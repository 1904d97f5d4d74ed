package service

import (
	"context"
	"time"
)

// Inventory event types.
const (
	InventoryEventAdded   = "food_item.added"
	InventoryEventRemoved = "food_item.removed"
)

// InventoryEvent describes a completed change to the inventory.
type InventoryEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	ItemID     int64     `json:"item_id"`
	Name       string    `json:"name,omitempty"`
	Category   *string   `json:"category,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishInventoryEvent publishes a change event for downstream consumers
	PublishInventoryEvent(ctx context.Context, event *InventoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
