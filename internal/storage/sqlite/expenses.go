package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// CreateExpense persists a new expense and its participants in one transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO expenses (id, group_id, description, amount, payer_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Description, expense.Amount.String(),
		expense.PayerID, expense.CreatedAt,
	)
	if err != nil {
		if isConstraintErr(err) {
			return fmt.Errorf("%w: expense references an unknown group or payer", storage.ErrConflict)
		}
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, memberID := range expense.Participants {
		settled := 0
		if expense.SettledBy.Has(memberID) {
			settled = 1
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO expense_participants (expense_id, member_id, position, settled)
			VALUES (?, ?, ?, ?)`,
			expense.ID, memberID, i, settled,
		)
		if err != nil {
			if isConstraintErr(err) {
				return fmt.Errorf("%w: participant %s", storage.ErrConflict, memberID)
			}
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including participants and settled set.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, group_id, description, amount, payer_id, created_at
		FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount,
		&expense.PayerID, &expense.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: expense %s", storage.ErrNotFound, expenseID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	participants, err := s.loadParticipants(ctx,
		"SELECT expense_id, member_id, settled FROM expense_participants WHERE expense_id = ? ORDER BY position",
		expenseID,
	)
	if err != nil {
		return nil, err
	}
	participants.fill(expense)

	return expense, nil
}

// ListExpenses retrieves a group's expenses in the order they were recorded.
func (s *SQLiteStore) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, group_id, description, amount, payer_id, created_at
		FROM expenses WHERE group_id = ?
		ORDER BY created_at, rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Description, &e.Amount, &e.PayerID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	rows.Close()

	participants, err := s.loadParticipants(ctx, `
		SELECT p.expense_id, p.member_id, p.settled
		FROM expense_participants p
		JOIN expenses e ON e.id = p.expense_id
		WHERE e.group_id = ?
		ORDER BY p.expense_id, p.position`,
		groupID,
	)
	if err != nil {
		return nil, err
	}
	for i := range expenses {
		participants.fill(&expenses[i])
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID. Participants are removed by cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return expectOneRow(res, "expense", expenseID)
}

// participantRows groups participant rows by expense ID.
type participantRows map[string]*participantList

type participantList struct {
	ids     []string
	settled []string
}

func (p participantRows) fill(expense *models.Expense) {
	list, ok := p[expense.ID]
	if !ok {
		expense.Participants = []string{}
		expense.SettledBy = models.NewIDSet()
		return
	}
	expense.Participants = list.ids
	expense.SettledBy = models.NewIDSet(list.settled...)
}

func (s *SQLiteStore) loadParticipants(ctx context.Context, query string, arg string) (participantRows, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	out := make(participantRows)
	for rows.Next() {
		var expenseID, memberID string
		var settled int64
		if err := rows.Scan(&expenseID, &memberID, &settled); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		list, ok := out[expenseID]
		if !ok {
			list = &participantList{}
			out[expenseID] = list
		}
		list.ids = append(list.ids, memberID)
		if settled != 0 {
			list.settled = append(list.settled, memberID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return out, nil
}
