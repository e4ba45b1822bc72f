package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/leadflow/leadflow/internal/domain"
)

const leadReturning = "RETURNING id, name, email, phone, status, created_at, updated_at"

type leadRepository struct {
	db *sql.DB
}

// NewLeadRepository creates a new PostgreSQL lead repository
func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Find(ctx context.Context, q domain.LeadQuery) ([]*domain.Lead, error) {
	query, args, err := buildLeadPageQuery(q).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build leads query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	leads := []*domain.Lead{}
	for rows.Next() {
		var lead *domain.Lead
		if q.Scope == domain.LeadScopeCampaign {
			lead, err = scanLeadWithMembership(rows)
		} else {
			lead, err = domain.ScanLead(rows)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lead rows: %w", err)
	}

	return leads, nil
}

func scanLeadWithMembership(rows *sql.Rows) (*domain.Lead, error) {
	var (
		lead   domain.Lead
		lc     domain.LeadCampaign
		status string
		lcStat string
	)
	if err := rows.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &status, &lead.CreatedAt, &lead.UpdatedAt,
		&lc.CampaignID, &lc.LeadID, &lcStat, &lc.CreatedAt, &lc.UpdatedAt,
	); err != nil {
		return nil, err
	}
	lead.Status = domain.LeadStatus(status)
	lc.Status = domain.LeadCampaignStatus(lcStat)
	lead.Campaign = &lc
	return &lead, nil
}

func (r *leadRepository) Count(ctx context.Context, q domain.LeadQuery) (int, error) {
	query, args, err := buildLeadCountQuery(q).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return total, nil
}

func (r *leadRepository) FindByID(ctx context.Context, id int64) (*domain.Lead, error) {
	query := `
		SELECT id, name, email, phone, status, created_at, updated_at
		FROM leads
		WHERE id = $1
	`
	lead, err := domain.ScanLead(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgLeadNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

func (r *leadRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM leads WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check lead existence: %w", err)
	}
	return exists, nil
}

func (r *leadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	query := `
		INSERT INTO leads (name, email, phone, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, lead.Name, lead.Email, lead.Phone, string(lead.Status)).
		Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

func (r *leadRepository) UpdateByID(ctx context.Context, id int64, update domain.LeadUpdate) (*domain.Lead, error) {
	b := psql.Update("leads").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(leadReturning)

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.Phone != nil {
		b = b.Set("phone", *update.Phone)
	}
	if update.Status != nil {
		b = b.Set("status", string(*update.Status))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build lead update: %w", err)
	}

	lead, err := domain.ScanLead(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgLeadNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}
	return lead, nil
}

func (r *leadRepository) DeleteByID(ctx context.Context, id int64) (*domain.Lead, error) {
	query := `DELETE FROM leads WHERE id = $1 ` + leadReturning
	lead, err := domain.ScanLead(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgLeadNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete lead: %w", err)
	}
	return lead, nil
}
