package service

import (
	"context"
	"fmt"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
	"github.com/leadflow/leadflow/pkg/tracing"
)

type GroupService struct {
	repo   domain.GroupRepository
	logger logger.Logger
}

func NewGroupService(repo domain.GroupRepository, logger logger.Logger) *GroupService {
	return &GroupService{
		repo:   repo,
		logger: logger,
	}
}

func (s *GroupService) ListGroups(ctx context.Context) (groups []*domain.Group, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupService", "ListGroups")
	defer func() { tracing.EndSpan(span, err) }()

	groups, err = s.repo.Find(ctx)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list groups: %v", err))
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	if groups == nil {
		groups = []*domain.Group{}
	}
	return groups, nil
}

func (s *GroupService) GetGroup(ctx context.Context, id int64) (group *domain.Group, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupService", "GetGroup")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "group_id", id)

	group, err = s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("group_id", id).Error(fmt.Sprintf("Failed to get group: %v", err))
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func (s *GroupService) CreateGroup(ctx context.Context, group *domain.Group) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupService", "CreateGroup")
	defer func() { tracing.EndSpan(span, err) }()

	if err := group.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, group); err != nil {
		if isDomainError(err) {
			return err
		}
		s.logger.WithField("name", group.Name).Error(fmt.Sprintf("Failed to create group: %v", err))
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, id int64, update domain.GroupUpdate) (group *domain.Group, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupService", "UpdateGroup")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "group_id", id)

	if update.IsEmpty() {
		return nil, domain.NewValidationError("no fields to update")
	}

	group, err = s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.WithField("group_id", id).Error(fmt.Sprintf("Failed to update group: %v", err))
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

// DeleteGroup removes a group along with its memberships
func (s *GroupService) DeleteGroup(ctx context.Context, id int64) (group *domain.Group, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupService", "DeleteGroup")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "group_id", id)

	group, err = s.repo.DeleteByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("group_id", id).Error(fmt.Sprintf("Failed to delete group: %v", err))
		return nil, fmt.Errorf("failed to delete group: %w", err)
	}
	return group, nil
}
