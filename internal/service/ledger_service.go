// Package service implements the ledger use cases on top of storage and the calculator.
package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/mmynk/groupsplit/internal/events"
	"github.com/mmynk/groupsplit/internal/metrics"
	"github.com/mmynk/groupsplit/internal/storage"
)

// LedgerService manages groups, members and expenses and computes who owes whom.
// It is safe for concurrent use.
type LedgerService struct {
	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics

	// balances collapses concurrent GetBalances calls that would read the same
	// group state. Keys are balanceKey values.
	balances singleflight.Group

	mu        sync.Mutex
	revisions map[string]uint64 // per group, bumped after every committed change
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithPublisher sets where ledger change events are sent. Defaults to a no-op publisher.
func WithPublisher(p events.Publisher) Option {
	return func(s *LedgerService) {
		s.publisher = p
	}
}

// WithMetrics sets the collectors computations and mutations are recorded into.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *LedgerService) {
		s.metrics = m
	}
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store, opts ...Option) *LedgerService {
	s := &LedgerService{
		store:     store,
		publisher: events.NopPublisher{},
		revisions: make(map[string]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// changed records a successful mutation. Publishing is best effort: a broker
// outage must not undo a change that is already stored.
func (s *LedgerService) changed(ctx context.Context, groupID string, kind events.Kind, entityID string) {
	s.mu.Lock()
	s.revisions[groupID]++
	s.mu.Unlock()

	s.metrics.ObserveMutation(string(kind))

	if err := s.publisher.Publish(ctx, events.NewLedgerChanged(groupID, kind, entityID)); err != nil {
		slog.WarnContext(ctx, "Failed to publish ledger event",
			"group_id", groupID,
			"kind", kind,
			"error", err,
		)
	}
}

// balanceKey identifies a group at its current revision. A call that starts
// after a change has been committed never shares a computation begun before it.
func (s *LedgerService) balanceKey(groupID string) string {
	s.mu.Lock()
	rev := s.revisions[groupID]
	s.mu.Unlock()
	return groupID + "@" + strconv.FormatUint(rev, 10)
}
