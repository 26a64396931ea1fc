// Package events publishes ledger change notifications.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Kind identifies what changed in a ledger.
type Kind string

const (
	KindGroupCreated      Kind = "group_created"
	KindGroupDeleted      Kind = "group_deleted"
	KindMemberAdded       Kind = "member_added"
	KindMemberDeleted     Kind = "member_deleted"
	KindExpenseAdded      Kind = "expense_added"
	KindExpenseDeleted    Kind = "expense_deleted"
	KindSettlementToggled Kind = "settlement_toggled"
)

// LedgerChanged tells subscribers that a group's balances may have changed.
// It carries ids only; consumers fetch current state through the API.
type LedgerChanged struct {
	GroupID   string    `json:"group_id"`
	Kind      Kind      `json:"kind"`
	EntityID  string    `json:"entity_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerChanged stamps a change with the current time.
func NewLedgerChanged(groupID string, kind Kind, entityID string) LedgerChanged {
	return LedgerChanged{
		GroupID:   groupID,
		Kind:      kind,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

// RoutingKey is the topic routing key the event is published under.
func (e LedgerChanged) RoutingKey() string {
	return "ledger." + string(e.Kind)
}

// ToJSON converts the event to JSON bytes.
func (e LedgerChanged) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LedgerChangedFromJSON decodes an event from JSON bytes.
func LedgerChangedFromJSON(data []byte) (LedgerChanged, error) {
	var e LedgerChanged
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher delivers ledger events.
type Publisher interface {
	Publish(ctx context.Context, event LedgerChanged) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, LedgerChanged) error { return nil }
func (NopPublisher) Close() error                                 { return nil }
