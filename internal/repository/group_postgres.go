package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/leadflow/leadflow/internal/domain"
)

const groupReturning = "RETURNING id, name, description, created_at, updated_at"

type groupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a new PostgreSQL group repository
func NewGroupRepository(db *sql.DB) domain.GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Find(ctx context.Context) ([]*domain.Group, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM groups
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query groups: %w", err)
	}
	defer func() { _ = rows.Close() }()

	groups := []*domain.Group{}
	for rows.Next() {
		group, err := domain.ScanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}
	return groups, nil
}

func (r *groupRepository) FindByID(ctx context.Context, id int64) (*domain.Group, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM groups
		WHERE id = $1
	`
	group, err := domain.ScanGroup(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgGroupNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

func (r *groupRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check group existence: %w", err)
	}
	return exists, nil
}

func (r *groupRepository) Create(ctx context.Context, group *domain.Group) error {
	query := `
		INSERT INTO groups (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query, group.Name, group.Description).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}
	return nil
}

func (r *groupRepository) UpdateByID(ctx context.Context, id int64, update domain.GroupUpdate) (*domain.Group, error) {
	b := psql.Update("groups").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(groupReturning)

	if update.Name != nil {
		b = b.Set("name", *update.Name)
	}
	if update.Description != nil {
		b = b.Set("description", *update.Description)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build group update: %w", err)
	}

	group, err := domain.ScanGroup(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgGroupNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}
	return group, nil
}

func (r *groupRepository) DeleteByID(ctx context.Context, id int64) (*domain.Group, error) {
	group, err := domain.ScanGroup(r.db.QueryRowContext(ctx, `DELETE FROM groups WHERE id = $1 `+groupReturning, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError(domain.MsgGroupNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete group: %w", err)
	}
	return group, nil
}

func (r *groupRepository) HasLead(ctx context.Context, groupID, leadID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM group_leads WHERE group_id = $1 AND lead_id = $2)`
	if err := r.db.QueryRowContext(ctx, query, groupID, leadID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check group membership: %w", err)
	}
	return exists, nil
}

func (r *groupRepository) AddLead(ctx context.Context, groupID, leadID int64) error {
	query := `INSERT INTO group_leads (group_id, lead_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, groupID, leadID); err != nil {
		if isUniqueViolation(err) {
			return domain.NewConflictError(domain.MsgLeadAlreadyInGroup)
		}
		if constraint, ok := foreignKeyViolation(err); ok {
			if strings.Contains(constraint, "group_id") {
				return domain.NewNotFoundError(domain.MsgGroupMissing)
			}
			return domain.NewNotFoundError(domain.MsgLeadMissing)
		}
		return fmt.Errorf("failed to add lead to group: %w", err)
	}
	return nil
}

func (r *groupRepository) RemoveLead(ctx context.Context, groupID, leadID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM group_leads WHERE group_id = $1 AND lead_id = $2`, groupID, leadID)
	if err != nil {
		return fmt.Errorf("failed to remove lead from group: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return domain.NewNotFoundError(domain.MsgLeadNotInGroup)
	}
	return nil
}
