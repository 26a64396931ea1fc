package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupsplit/internal/events"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// ExpenseInput is the data needed to record an expense.
type ExpenseInput struct {
	GroupID      string
	Description  string
	Amount       decimal.Decimal
	PayerID      string
	Participants []string
}

// validate checks the input against the group's members and returns the
// deduplicated participant list.
func (in ExpenseInput) validate(members []models.Member) ([]string, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidArgument)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidArgument)
	}

	known := make(map[string]bool, len(members))
	for _, m := range members {
		known[m.ID] = true
	}

	if in.PayerID == "" {
		return nil, fmt.Errorf("%w: payer is required", ErrInvalidArgument)
	}
	if !known[in.PayerID] {
		return nil, fmt.Errorf("%w: payer %s is not a member of the group", ErrInvalidArgument, in.PayerID)
	}

	participants := models.DedupeIDs(in.Participants)
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", ErrInvalidArgument)
	}
	for _, id := range participants {
		if !known[id] {
			return nil, fmt.Errorf("%w: participant %s is not a member of the group", ErrInvalidArgument, id)
		}
	}

	return participants, nil
}

// AddExpense records an expense split evenly among its participants.
// The payer starts out settled when they are one of the participants.
func (s *LedgerService) AddExpense(ctx context.Context, in ExpenseInput) (*models.Expense, error) {
	slog.DebugContext(ctx, "AddExpense request received",
		"group_id", in.GroupID,
		"amount", in.Amount.String(),
		"participants_count", len(in.Participants),
	)

	members, err := s.ListMembers(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}

	participants, err := in.validate(members)
	if err != nil {
		return nil, err
	}

	settled := models.NewIDSet()
	for _, id := range participants {
		if id == in.PayerID {
			settled = models.NewIDSet(id)
		}
	}

	expense := &models.Expense{
		GroupID:      in.GroupID,
		Description:  strings.TrimSpace(in.Description),
		Amount:       in.Amount,
		PayerID:      in.PayerID,
		Participants: participants,
		SettledBy:    settled,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.ErrorContext(ctx, "AddExpense failed", "group_id", in.GroupID, "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "Expense added",
		"group_id", expense.GroupID,
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
	)
	s.changed(ctx, expense.GroupID, events.KindExpenseAdded, expense.ID)

	return expense, nil
}

// ListExpenses returns the expenses of an existing group in the order they were recorded.
func (s *LedgerService) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, groupID)
}

// DeleteExpense removes an expense.
func (s *LedgerService) DeleteExpense(ctx context.Context, expenseID string) error {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		slog.ErrorContext(ctx, "DeleteExpense failed", "expense_id", expenseID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "Expense deleted", "group_id", expense.GroupID, "expense_id", expenseID)
	s.changed(ctx, expense.GroupID, events.KindExpenseDeleted, expenseID)

	return nil
}

// ToggleSettlement flips whether a participant has paid their share of an expense back.
// The payer cannot be toggled: they never owe themselves.
// The flip is a single storage write, so concurrent toggles on one expense never
// overwrite each other; the returned expense is re-read after the write.
func (s *LedgerService) ToggleSettlement(ctx context.Context, expenseID, memberID string) (*models.Expense, error) {
	expense, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	if memberID == expense.PayerID {
		return nil, fmt.Errorf("%w: the payer's own share is always settled", ErrFailedPrecondition)
	}
	if !expense.HasParticipant(memberID) {
		return nil, fmt.Errorf("%w: member %s is not a participant of this expense", ErrFailedPrecondition, memberID)
	}

	settled, err := s.store.ToggleSettled(ctx, expenseID, memberID)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %v", ErrFailedPrecondition, err)
		}
		slog.ErrorContext(ctx, "ToggleSettlement failed", "expense_id", expenseID, "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "Settlement toggled",
		"group_id", expense.GroupID,
		"expense_id", expenseID,
		"member_id", memberID,
		"settled", settled,
	)
	s.changed(ctx, expense.GroupID, events.KindSettlementToggled, expenseID)

	return s.store.GetExpense(ctx, expenseID)
}
