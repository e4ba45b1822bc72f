package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
	"github.com/leadflow/leadflow/pkg/tracing"
)

type LeadService struct {
	repo     domain.LeadRepository
	eventBus domain.EventBus
	logger   logger.Logger
	now      func() time.Time
}

func NewLeadService(repo domain.LeadRepository, eventBus domain.EventBus, logger logger.Logger) *LeadService {
	return &LeadService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *LeadService) ListLeads(ctx context.Context, query domain.LeadQuery) (page *domain.LeadPage, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "LeadService", "ListLeads")
	defer func() { tracing.EndSpan(span, err) }()

	if query.Scope == "" {
		query.Scope = domain.LeadScopeAll
	}
	if query.Scope != domain.LeadScopeAll {
		return nil, domain.NewValidationError(fmt.Sprintf("unsupported lead scope: %q", query.Scope))
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	page, err = listLeadPage(ctx, s.repo, query)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list leads: %v", err))
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return page, nil
}

func (s *LeadService) GetLead(ctx context.Context, id int64) (lead *domain.Lead, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "LeadService", "GetLead")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "lead_id", id)

	lead, err = s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("lead_id", id).Error(fmt.Sprintf("Failed to get lead: %v", err))
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

// CreateLead stores a new lead. A lead without a status starts as New.
func (s *LeadService) CreateLead(ctx context.Context, lead *domain.Lead) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "LeadService", "CreateLead")
	defer func() { tracing.EndSpan(span, err) }()

	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}
	if err := lead.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		if isDomainError(err) {
			return err
		}
		s.logger.WithField("email", lead.Email).Error(fmt.Sprintf("Failed to create lead: %v", err))
		return fmt.Errorf("failed to create lead: %w", err)
	}

	publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{
		Type:   domain.EventLeadCreated,
		LeadID: lead.ID,
		Data:   map[string]interface{}{"status": string(lead.Status)},
	})
	return nil
}

// UpdateLead applies a partial update after checking the status lifecycle
// against the stored lead
func (s *LeadService) UpdateLead(ctx context.Context, id int64, update domain.LeadUpdate) (lead *domain.Lead, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "LeadService", "UpdateLead")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "lead_id", id)

	if update.IsEmpty() {
		return nil, domain.NewValidationError("no fields to update")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("lead_id", id).Error(fmt.Sprintf("Failed to load lead for update: %v", err))
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	if err := domain.CheckLeadStatusTransition(current, update.Status, s.now()); err != nil {
		return nil, err
	}

	lead, err = s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.WithField("lead_id", id).Error(fmt.Sprintf("Failed to update lead: %v", err))
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	if update.Status != nil && *update.Status != current.Status {
		publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{
			Type:   domain.EventLeadStatusChanged,
			LeadID: id,
			Data: map[string]interface{}{
				"from": string(current.Status),
				"to":   string(lead.Status),
			},
		})
	}
	return lead, nil
}

// DeleteLead removes a lead. Its group and campaign memberships are removed
// by the store.
func (s *LeadService) DeleteLead(ctx context.Context, id int64) (lead *domain.Lead, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "LeadService", "DeleteLead")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "lead_id", id)

	lead, err = s.repo.DeleteByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("lead_id", id).Error(fmt.Sprintf("Failed to delete lead: %v", err))
		return nil, fmt.Errorf("failed to delete lead: %w", err)
	}

	publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{Type: domain.EventLeadDeleted, LeadID: id})
	return lead, nil
}
