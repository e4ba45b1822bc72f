package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/leadflow/leadflow/internal/domain"
)

const campaignReturning = "RETURNING id, name, description, start_date, end_date, created_at, updated_at"

type campaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new PostgreSQL campaign repository
func NewCampaignRepository(db *sql.DB) domain.CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Find(ctx context.Context, limit, offset int) ([]*domain.Campaign, error) {
	query, args, err := psql.Select(
		"id", "name", "description", "start_date", "end_date", "created_at", "updated_at",
	).
		From("campaigns").
		OrderBy("id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaigns query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	campaigns := []*domain.Campaign{}
	for rows.Next() {
		campaign, err := domain.ScanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating campaign rows: %w", err)
	}
	return campaigns, nil
}

func (r *campaignRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return total, nil
}

func (r *campaignRepository) FindByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	query := `
		SELECT id, name, description, start_date, end_date, created_at, updated_at
		FROM campaigns
		WHERE id = $1
	`
	campaign, err := domain.ScanCampaign(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgCampaignNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

func (r *campaignRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check campaign existence: %w", err)
	}
	return exists, nil
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query := `
		INSERT INTO campaigns (name, description, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		campaign.Name,
		campaign.Description,
		campaign.StartDate,
		campaign.EndDate,
	).Scan(&campaign.ID, &campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) UpdateByID(ctx context.Context, id int64, update domain.CampaignUpdate) (*domain.Campaign, error) {
	b := psql.Update("campaigns").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(campaignReturning)

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}
	if update.StartDate != nil {
		b = b.Set("start_date", *update.StartDate)
	}
	if update.ClearEndDate {
		b = b.Set("end_date", nil)
	} else if update.EndDate != nil {
		b = b.Set("end_date", *update.EndDate)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build campaign update: %w", err)
	}

	campaign, err := domain.ScanCampaign(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgCampaignNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

func (r *campaignRepository) DeleteByID(ctx context.Context, id int64) (*domain.Campaign, error) {
	campaign, err := domain.ScanCampaign(r.db.QueryRowContext(ctx, `DELETE FROM campaigns WHERE id = $1 `+campaignReturning, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgCampaignNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete campaign: %w", err)
	}
	return campaign, nil
}

func (r *campaignRepository) GetLeadInCampaign(ctx context.Context, campaignID, leadID int64) (*domain.LeadCampaign, error) {
	query := `
		SELECT campaign_id, lead_id, status, created_at, updated_at
		FROM lead_campaigns
		WHERE campaign_id = $1 AND lead_id = $2
	`
	var (
		lc     domain.LeadCampaign
		status string
	)
	err := r.db.QueryRowContext(ctx, query, campaignID, leadID).
		Scan(&lc.CampaignID, &lc.LeadID, &status, &lc.CreatedAt, &lc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign membership: %w", err)
	}
	lc.Status = domain.LeadCampaignStatus(status)
	return &lc, nil
}

func (r *campaignRepository) AddLead(ctx context.Context, membership *domain.LeadCampaign) error {
	query := `
		INSERT INTO lead_campaigns (campaign_id, lead_id, status)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, membership.CampaignID, membership.LeadID, string(membership.Status)).
		Scan(&membership.CreatedAt, &membership.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError(domain.MsgLeadAlreadyInCampaign)
		}
		if _, ok := foreignKeyViolation(err); ok {
			return domain.NewNotFoundError(domain.MsgCampaignOrLeadNotFound)
		}
		return fmt.Errorf("failed to add lead to campaign: %w", err)
	}
	return nil
}

func (r *campaignRepository) UpdateLeadStatus(ctx context.Context, membership *domain.LeadCampaign) error {
	query := `
		UPDATE lead_campaigns
		SET status = $1, updated_at = NOW()
		WHERE campaign_id = $2 AND lead_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, string(membership.Status), membership.CampaignID, membership.LeadID)
	if err != nil {
		return fmt.Errorf("failed to update campaign membership: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(domain.MsgLeadNotInCampaign)
	}
	return nil
}

func (r *campaignRepository) RemoveLead(ctx context.Context, campaignID, leadID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM lead_campaigns WHERE campaign_id = $1 AND lead_id = $2`, campaignID, leadID)
	if err != nil {
		return fmt.Errorf("failed to remove lead from campaign: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(domain.MsgLeadNotInCampaign)
	}
	return nil
}
