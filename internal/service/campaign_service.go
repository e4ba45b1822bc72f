package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
	"github.com/leadflow/leadflow/pkg/tracing"
)

type CampaignService struct {
	repo   domain.CampaignRepository
	logger logger.Logger
}

func NewCampaignService(repo domain.CampaignRepository, logger logger.Logger) *CampaignService {
	return &CampaignService{
		repo:   repo,
		logger: logger,
	}
}

// ListCampaigns returns one page of campaigns ordered by id
func (s *CampaignService) ListCampaigns(ctx context.Context, page, pageSize int) (result *domain.CampaignPage, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignService", "ListCampaigns")
	defer func() { tracing.EndSpan(span, err) }()

	if err := domain.ValidatePaging(page, pageSize); err != nil {
		return nil, err
	}

	var (
		campaigns []*domain.Campaign
		total     int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		campaigns, err = s.repo.Find(gctx, pageSize, (page-1)*pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to list campaigns: %v", err))
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	if campaigns == nil {
		campaigns = []*domain.Campaign{}
	}
	return &domain.CampaignPage{
		Campaigns: campaigns,
		Meta:      domain.NewPageMeta(page, pageSize, total),
	}, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, id int64) (campaign *domain.Campaign, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignService", "GetCampaign")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "campaign_id", id)

	campaign, err = s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to get campaign: %v", err))
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign *domain.Campaign) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignService", "CreateCampaign")
	defer func() { tracing.EndSpan(span, err) }()

	if err := campaign.Validate(); err != nil {
		return domain.NewValidationError(err.Error())
	}

	if err := s.repo.Create(ctx, campaign); err != nil {
		if isDomainError(err) {
			return err
		}
		s.logger.WithField("name", campaign.Name).Error(fmt.Sprintf("Failed to create campaign: %v", err))
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

// UpdateCampaign applies a partial update. The merged campaign is validated
// first so a new start or end date cannot invert the date range.
func (s *CampaignService) UpdateCampaign(ctx context.Context, id int64, update domain.CampaignUpdate) (campaign *domain.Campaign, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignService", "UpdateCampaign")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "campaign_id", id)

	if update.IsEmpty() {
		return nil, domain.NewValidationError("no fields to update")
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to load campaign for update: %v", err))
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	merged := update.Apply(*current)
	if err := merged.Validate(); err != nil {
		return nil, domain.NewValidationError(err.Error())
	}

	campaign, err = s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to update campaign: %v", err))
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

// DeleteCampaign removes a campaign along with its lead memberships
func (s *CampaignService) DeleteCampaign(ctx context.Context, id int64) (campaign *domain.Campaign, err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "CampaignService", "DeleteCampaign")
	defer func() { tracing.EndSpan(span, err) }()
	tracing.AddAttribute(ctx, "campaign_id", id)

	campaign, err = s.repo.DeleteByID(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		s.logger.WithField("campaign_id", id).Error(fmt.Sprintf("Failed to delete campaign: %v", err))
		return nil, fmt.Errorf("failed to delete campaign: %w", err)
	}
	return campaign, nil
}
