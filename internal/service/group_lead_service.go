package service

import (
	"context"
	"fmt"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
	"github.com/leadflow/leadflow/pkg/tracing"
)

// GroupLeadService manages which leads belong to which groups
type GroupLeadService struct {
	groupRepo domain.GroupRepository
	leadRepo  domain.LeadRepository
	eventBus  domain.EventBus
	logger    logger.Logger
}

func NewGroupLeadService(
	groupRepo domain.GroupRepository,
	leadRepo domain.LeadRepository,
	eventBus domain.EventBus,
	logger logger.Logger,
) *GroupLeadService {
	return &GroupLeadService{
		groupRepo: groupRepo,
		leadRepo:  leadRepo,
		eventBus:  eventBus,
		logger:    logger,
	}
}

// GetLeads returns a page of the leads in the group named by query.ScopeID
func (s *GroupLeadService) GetLeads(ctx context.Context, query domain.LeadQuery) (page *domain.LeadPage, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupLeadService", "GetLeads")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "group_id", query.ScopeID)

	if query.Scope != domain.LeadScopeGroup {
		return nil, domain.NewValidationError(fmt.Sprintf("unsupported lead scope: %q", query.Scope))
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireGroup(ctx, query.ScopeID); err != nil {
		return nil, err
	}

	page, err = listLeadPage(ctx, s.leadRepo, query)
	if err != nil {
		s.logger.WithField("group_id", query.ScopeID).Error(fmt.Sprintf("Failed to list group leads: %v", err))
		return nil, fmt.Errorf("failed to list group leads: %w", err)
	}
	return page, nil
}

// AddLead makes the lead a member of the group. Adding an existing member
// is a conflict.
func (s *GroupLeadService) AddLead(ctx context.Context, groupID, leadID int64) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupLeadService", "AddLead")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "group_id", groupID)
	tracing.AddAttribute(ctx, "lead_id", leadID)

	if err := s.requireGroupAndLead(ctx, groupID, leadID); err != nil {
		return err
	}

	member, err := s.groupRepo.HasLead(ctx, groupID, leadID)
	if err != nil {
		return s.wrap(groupID, leadID, "check group membership", err)
	}
	if member {
		return domain.NewConflictError(domain.MsgLeadAlreadyInGroup)
	}

	if err := s.groupRepo.AddLead(ctx, groupID, leadID); err != nil {
		if isDomainError(err) {
			return err
		}
		return s.wrap(groupID, leadID, "add lead to group", err)
	}

	tracing.RecordMembershipChange(ctx, "group", "add")
	publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{
		Type:    domain.EventLeadAddedToGroup,
		LeadID:  leadID,
		GroupID: groupID,
	})
	return nil
}

func (s *GroupLeadService) RemoveLead(ctx context.Context, groupID, leadID int64) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "GroupLeadService", "RemoveLead")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "group_id", groupID)
	tracing.AddAttribute(ctx, "lead_id", leadID)

	if err := s.requireGroupAndLead(ctx, groupID, leadID); err != nil {
		return err
	}

	member, err := s.groupRepo.HasLead(ctx, groupID, leadID)
	if err != nil {
		return s.wrap(groupID, leadID, "check group membership", err)
	}
	if !member {
		return domain.NewNotFoundError(domain.MsgLeadNotInGroup)
	}

	if err := s.groupRepo.RemoveLead(ctx, groupID, leadID); err != nil {
		if isDomainError(err) {
			return err
		}
		return s.wrap(groupID, leadID, "remove lead from group", err)
	}

	tracing.RecordMembershipChange(ctx, "group", "remove")
	publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{
		Type:    domain.EventLeadRemovedFromGroup,
		LeadID:  leadID,
		GroupID: groupID,
	})
	return nil
}

func (s *GroupLeadService) requireGroup(ctx context.Context, groupID int64) error {
	ok, err := s.groupRepo.Exists(ctx, groupID)
	if err != nil {
		s.logger.WithField("group_id", groupID).Error(fmt.Sprintf("Failed to check group: %v", err))
		return fmt.Errorf("failed to check group: %w", err)
	}
	if !ok {
		return domain.NewNotFoundError(domain.MsgGroupMissing)
	}
	return nil
}

// requireGroupAndLead reports the missing group before the missing lead
func (s *GroupLeadService) requireGroupAndLead(ctx context.Context, groupID, leadID int64) error {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return err
	}
	ok, err := s.leadRepo.Exists(ctx, leadID)
	if err != nil {
		return s.wrap(groupID, leadID, "check lead", err)
	}
	if !ok {
		return domain.NewNotFoundError(domain.MsgLeadMissing)
	}
	return nil
}

func (s *GroupLeadService) wrap(groupID, leadID int64, action string, err error) error {
	s.logger.WithFields(map[string]interface{}{
		"group_id": groupID,
		"lead_id":  leadID,
	}).Error(fmt.Sprintf("Failed to %s: %v", action, err))
	return fmt.Errorf("failed to %s: %w", action, err)
}
