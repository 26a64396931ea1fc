package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mmynk/groupsplit/internal/storage"
)

// ToggleSettled flips the settled flag of one participant in a single statement
// and returns the new value. The payer's own row is never flipped.
func (s *SQLiteStore) ToggleSettled(ctx context.Context, expenseID, memberID string) (bool, error) {
	var settled int64
	err := s.db.QueryRowContext(ctx, `
		UPDATE expense_participants
		SET settled = 1 - settled
		WHERE expense_id = ?
		  AND member_id = ?
		  AND member_id <> (SELECT payer_id FROM expenses WHERE id = ?)
		RETURNING settled`,
		expenseID, memberID, expenseID,
	).Scan(&settled)
	if errors.Is(err, sql.ErrNoRows) {
		return false, s.toggleMiss(ctx, expenseID, memberID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to toggle settlement: %w", err)
	}

	return settled == 1, nil
}

// toggleMiss explains why ToggleSettled matched no row.
func (s *SQLiteStore) toggleMiss(ctx context.Context, expenseID, memberID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM expenses WHERE id = ?", expenseID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: expense %s", storage.ErrNotFound, expenseID)
	}
	if err != nil {
		return fmt.Errorf("failed to check expense existence: %w", err)
	}
	return fmt.Errorf("%w: member %s is the payer or not a participant of expense %s",
		storage.ErrConflict, memberID, expenseID)
}
