package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/groupsplit/internal/events"
	"github.com/mmynk/groupsplit/internal/models"
)

// CreateGroup creates a new, empty group.
func (s *LedgerService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidArgument)
	}

	group := &models.Group{Name: name}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.ErrorContext(ctx, "CreateGroup failed", "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "Group created", "group_id", group.ID, "name", group.Name)
	s.changed(ctx, group.ID, events.KindGroupCreated, group.ID)

	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *LedgerService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// ListGroups retrieves all groups.
func (s *LedgerService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.store.ListGroups(ctx)
}

// DeleteGroup removes a group with all of its members and expenses.
func (s *LedgerService) DeleteGroup(ctx context.Context, groupID string) error {
	if err := s.store.DeleteGroup(ctx, groupID); err != nil {
		slog.ErrorContext(ctx, "DeleteGroup failed", "group_id", groupID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "Group deleted", "group_id", groupID)
	s.changed(ctx, groupID, events.KindGroupDeleted, "")

	return nil
}
