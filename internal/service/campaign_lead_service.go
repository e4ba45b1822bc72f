package service

import (
	"context"
	"fmt"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
	"github.com/leadflow/leadflow/pkg/tracing"
)

// CampaignLeadService manages lead memberships in campaigns and the
// per-campaign status of each member
type CampaignLeadService struct {
	campaignRepo domain.CampaignRepository
	leadRepo     domain.LeadRepository
	eventBus     domain.EventBus
	logger       logger.Logger
}

func NewCampaignLeadService(
	campaignRepo domain.CampaignRepository,
	leadRepo domain.LeadRepository,
	eventBus domain.EventBus,
	logger logger.Logger,
) *CampaignLeadService {
	return &CampaignLeadService{
		campaignRepo: campaignRepo,
		leadRepo:     leadRepo,
		eventBus:     eventBus,
		logger:       logger,
	}
}

// GetLeads returns a page of the campaign's leads. Status filters apply to
// the membership status, not to the lead's own status.
func (s *CampaignLeadService) GetLeads(ctx context.Context, query domain.LeadQuery) (page *domain.LeadPage, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignLeadService", "GetLeads")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "campaign_id", query.ScopeID)

	if query.Scope != domain.LeadScopeCampaign {
		return nil, domain.NewValidationError(fmt.Sprintf("unsupported lead scope: %q", query.Scope))
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ok, err := s.campaignRepo.Exists(ctx, query.ScopeID)
	if err != nil {
		s.logger.WithField("campaign_id", query.ScopeID).Error(fmt.Sprintf("Failed to check campaign: %v", err))
		return nil, fmt.Errorf("failed to check campaign: %w", err)
	}
	if !ok {
		return nil, domain.NewNotFoundError(domain.MsgCampaignMissing)
	}

	page, err = listLeadPage(ctx, s.leadRepo, query)
	if err != nil {
		s.logger.WithField("campaign_id", query.ScopeID).Error(fmt.Sprintf("Failed to list campaign leads: %v", err))
		return nil, fmt.Errorf("failed to list campaign leads: %w", err)
	}
	return page, nil
}

// AddLead adds the lead to the campaign with the given status, New when empty
func (s *CampaignLeadService) AddLead(ctx context.Context, campaignID, leadID int64, status domain.LeadCampaignStatus) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignLeadService", "AddLead")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "campaign_id", campaignID)
	tracing.AddAttribute(ctx, "lead_id", leadID)

	if status == "" {
		status = domain.LeadCampaignStatusNew
	}
	if err := status.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}

	campaignExists, err := s.campaignRepo.Exists(ctx, campaignID)
	if err != nil {
		return s.wrap(campaignID, leadID, "check campaign", err)
	}
	leadExists, err := s.leadRepo.Exists(ctx, leadID)
	if err != nil {
		return s.wrap(campaignID, leadID, "check lead", err)
	}
	if !campaignExists || !leadExists {
		return domain.NewNotFoundError(domain.MsgCampaignOrLeadNotFound)
	}

	existing, err := s.campaignRepo.GetLeadInCampaign(ctx, campaignID, leadID)
	if err != nil {
		return s.wrap(campaignID, leadID, "check campaign membership", err)
	}
	if existing != nil {
		return domain.NewConflictError(domain.MsgLeadAlreadyInCampaign)
	}

	membership := &domain.LeadCampaign{
		CampaignID: campaignID,
		LeadID:     leadID,
		Status:     status,
	}
	if err := s.campaignRepo.AddLead(ctx, membership); err != nil {
		if isDomainError(err) {
			return err
		}
		return s.wrap(campaignID, leadID, "add lead to campaign", err)
	}

	tracing.RecordMembershipChange(ctx, "campaign", "add")
	publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{
		Type:       domain.EventLeadAddedToCampaign,
		LeadID:     leadID,
		CampaignID: campaignID,
		Data:       map[string]interface{}{"status": string(status)},
	})
	return nil
}

// UpdateLeadStatus changes the membership status only
func (s *CampaignLeadService) UpdateLeadStatus(ctx context.Context, campaignID, leadID int64, status domain.LeadCampaignStatus) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignLeadService", "UpdateLeadStatus")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "campaign_id", campaignID)
	tracing.AddAttribute(ctx, "lead_id", leadID)

	if err := status.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}

	membership, err := s.requireMembership(ctx, campaignID, leadID)
	if err != nil {
		return err
	}
	previous := membership.Status
	membership.Status = status

	if err := s.campaignRepo.UpdateLeadStatus(ctx, membership); err != nil {
		if isDomainError(err) {
			return err
		}
		return s.wrap(campaignID, leadID, "update campaign lead status", err)
	}

	tracing.RecordMembershipChange(ctx, "campaign", "update")
	publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{
		Type:       domain.EventLeadCampaignStatusUpdate,
		LeadID:     leadID,
		CampaignID: campaignID,
		Data: map[string]interface{}{
			"from": string(previous),
			"to":   string(status),
		},
	})
	return nil
}

func (s *CampaignLeadService) RemoveLead(ctx context.Context, campaignID, leadID int64) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignLeadService", "RemoveLead")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "campaign_id", campaignID)
	tracing.AddAttribute(ctx, "lead_id", leadID)

	if _, err := s.requireMembership(ctx, campaignID, leadID); err != nil {
		return err
	}

	if err := s.campaignRepo.RemoveLead(ctx, campaignID, leadID); err != nil {
		if isDomainError(err) {
			return err
		}
		return s.wrap(campaignID, leadID, "remove lead from campaign", err)
	}

	tracing.RecordMembershipChange(ctx, "campaign", "remove")
	publishEvent(ctx, s.eventBus, s.logger, domain.EventPayload{
		Type:       domain.EventLeadRemovedFromCampaign,
		LeadID:     leadID,
		CampaignID: campaignID,
	})
	return nil
}

func (s *CampaignLeadService) requireMembership(ctx context.Context, campaignID, leadID int64) (*domain.LeadCampaign, error) {
	membership, err := s.campaignRepo.GetLeadInCampaign(ctx, campaignID, leadID)
	if err != nil {
		return nil, s.wrap(campaignID, leadID, "get campaign membership", err)
	}
	if membership == nil {
		return nil, domain.NewNotFoundError(domain.MsgLeadNotInCampaign)
	}
	return membership, nil
}

func (s *CampaignLeadService) wrap(campaignID, leadID int64, action string, err error) error {
	s.logger.WithFields(map[string]interface{}{
		"campaign_id": campaignID,
		"lead_id":     leadID,
	}).Error(fmt.Sprintf("Failed to %s: %v", action, err))
	return fmt.Errorf("failed to %s: %w", action, err)
}
