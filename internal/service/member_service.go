package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/groupsplit/internal/events"
	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/storage"
)

// AddMember adds a person to a group.
// The name is trimmed and must not match an existing member's name, ignoring case.
func (s *LedgerService) AddMember(ctx context.Context, groupID, name string) (*models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: member name is required", ErrInvalidArgument)
	}

	members, err := s.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	key := models.NameKey(name)
	for _, m := range members {
		if m.NameKey() == key {
			return nil, fmt.Errorf("%w: member %q already exists", ErrAlreadyExists, m.Name)
		}
	}

	member := &models.Member{GroupID: groupID, Name: name}
	if err := s.store.CreateMember(ctx, member); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: member %q already exists", ErrAlreadyExists, name)
		}
		slog.ErrorContext(ctx, "AddMember failed", "group_id", groupID, "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "Member added", "group_id", groupID, "member_id", member.ID, "name", member.Name)
	s.changed(ctx, groupID, events.KindMemberAdded, member.ID)

	return member, nil
}

// ListMembers returns the members of an existing group in the order they were added.
func (s *LedgerService) ListMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListMembers(ctx, groupID)
}

// DeleteMember removes a member who is not referenced by any expense.
func (s *LedgerService) DeleteMember(ctx context.Context, memberID string) error {
	member, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		return err
	}

	expenses, err := s.store.ListExpenses(ctx, member.GroupID)
	if err != nil {
		return err
	}
	for _, exp := range expenses {
		if exp.References(memberID) {
			return fmt.Errorf("%w: %s is part of expense %q; delete the expense first",
				ErrFailedPrecondition, member.Name, exp.Description)
		}
	}

	if err := s.store.DeleteMember(ctx, memberID); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return fmt.Errorf("%w: %s is part of an expense", ErrFailedPrecondition, member.Name)
		}
		slog.ErrorContext(ctx, "DeleteMember failed", "member_id", memberID, "error", err)
		return err
	}

	slog.InfoContext(ctx, "Member deleted", "group_id", member.GroupID, "member_id", memberID)
	s.changed(ctx, member.GroupID, events.KindMemberDeleted, memberID)

	return nil
}
