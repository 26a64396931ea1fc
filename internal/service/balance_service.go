package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/groupsplit/internal/calculator"
	"github.com/mmynk/groupsplit/internal/models"
)

// GroupBalances is the "who owes whom" view of a group.
type GroupBalances struct {
	// Members holds one summary per member, in member order.
	Members []models.MemberBalance

	// Debts is the simplified list of transfers that settles the group.
	Debts []models.SimplifiedDebt
}

// GetBalances computes per-member balances and simplified debts for a group.
//
// Concurrent calls for the same group revision share one computation and
// receive the same *GroupBalances, which callers must treat as read-only.
func (s *LedgerService) GetBalances(ctx context.Context, groupID string) (*GroupBalances, error) {
	v, err, shared := s.balances.Do(s.balanceKey(groupID), func() (any, error) {
		// Other callers may be waiting on this result, so the first caller's
		// cancellation must not abort it.
		return s.computeBalances(context.WithoutCancel(ctx), groupID)
	})
	if err != nil {
		slog.ErrorContext(ctx, "GetBalances failed", "group_id", groupID, "error", err)
		return nil, err
	}
	if shared {
		slog.DebugContext(ctx, "GetBalances shared a concurrent computation", "group_id", groupID)
	}
	return v.(*GroupBalances), nil
}

func (s *LedgerService) computeBalances(ctx context.Context, groupID string) (*GroupBalances, error) {
	members, err := s.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, groupID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := &GroupBalances{
		Members: calculator.Summarize(members, expenses),
		Debts:   []models.SimplifiedDebt{},
	}
	if len(members) > 0 && len(expenses) > 0 {
		balances := calculator.ComputeBalances(members, expenses)
		result.Debts = calculator.SimplifyDebts(balances, members)
	}
	s.metrics.ObserveComputation(time.Since(start), len(result.Debts))

	slog.InfoContext(ctx, "Balances computed",
		"group_id", groupID,
		"members_count", len(members),
		"expenses_count", len(expenses),
		"debts_count", len(result.Debts),
	)

	return result, nil
}
