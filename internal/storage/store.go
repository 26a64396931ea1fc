// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/groupsplit/internal/models"
)

var (
	// ErrNotFound is returned when a group, member or expense does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a uniqueness or reference constraint.
	ErrConflict = errors.New("conflict")
)

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends without changing the service layer.
type Store interface {
	// CreateGroup persists a new group. ID and CreatedAt are populated when empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by its ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups returns all groups, newest first.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// DeleteGroup removes a group together with its members and expenses.
	DeleteGroup(ctx context.Context, groupID string) error

	// CreateMember persists a new member. ID and CreatedAt are populated when empty.
	// Returns ErrConflict if the group already has a member with the same name key.
	CreateMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by its ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// ListMembers returns a group's members in the order they were added.
	ListMembers(ctx context.Context, groupID string) ([]models.Member, error)

	// DeleteMember removes a member.
	// Returns ErrConflict if an expense still references the member.
	DeleteMember(ctx context.Context, memberID string) error

	// CreateExpense persists a new expense with its participants and settled set.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense by its ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// ListExpenses returns a group's expenses in the order they were recorded.
	ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ToggleSettled atomically flips whether a participant has paid their share back
	// and returns the new state. Returns ErrNotFound for an unknown expense and
	// ErrConflict when memberID is the payer or not a participant.
	ToggleSettled(ctx context.Context, expenseID, memberID string) (bool, error)

	// Close releases any resources held by the store.
	Close() error
}
