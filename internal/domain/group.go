package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_group_service.go -package mocks github.com/leadflow/leadflow/internal/domain GroupService
//go:generate mockgen -destination mocks/mock_group_lead_service.go -package mocks github.com/leadflow/leadflow/internal/domain GroupLeadService
//go:generate mockgen -destination mocks/mock_group_repository.go -package mocks github.com/leadflow/leadflow/internal/domain GroupRepository

// Group is a named collection of leads
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate performs validation on the group fields
func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("invalid group: name is required")
	}
	if len(g.Name) > MaxNameLength {
		return fmt.Errorf("invalid group: name length must be between 1 and 255")
	}
	return nil
}

// ScanGroup scans a group row (id, name, description, created_at, updated_at)
func ScanGroup(scanner interface {
	Scan(dest ...interface{}) error
}) (*Group, error) {
	var g Group
	if err := scanner.Scan(
		&g.ID,
		&g.Name,
		&g.Description,
		&g.CreatedAt,
		&g.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &g, nil
}

// GroupUpdate holds the fields of a partial group update
type GroupUpdate struct {
	Name        *string
	Description *string
}

func (u GroupUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (r *CreateGroupRequest) Validate() (*Group, error) {
	group := &Group{
		Name:        r.Name,
		Description: r.Description,
	}
	if err := group.Validate(); err != nil {
		return nil, NewValidationError(strings.TrimPrefix(err.Error(), "invalid group: "))
	}
	return group, nil
}

type UpdateGroupRequest struct {
	Update GroupUpdate
}

func (r *UpdateGroupRequest) FromJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return NewValidationError("invalid JSON body")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return NewValidationError("request body must be a JSON object")
	}

	var err error
	if r.Update.Name, err = optionalString(root, "name"); err != nil {
		return err
	}
	if r.Update.Description, err = optionalString(root, "description"); err != nil {
		return err
	}
	if err := validateName(r.Update.Name); err != nil {
		return err
	}
	if r.Update.IsEmpty() {
		return NewValidationError("at least one field must be provided")
	}
	return nil
}

// AddGroupLeadRequest is the body of POST /api/groups/{groupId}/leads
type AddGroupLeadRequest struct {
	LeadID int64 `json:"leadId"`
}

func (r *AddGroupLeadRequest) Validate() error {
	if r.LeadID < 1 {
		return NewValidationError("leadId must be a positive integer")
	}
	return nil
}

type GroupService interface {
	ListGroups(ctx context.Context) ([]*Group, error)
	GetGroup(ctx context.Context, id int64) (*Group, error)
	CreateGroup(ctx context.Context, group *Group) error
	UpdateGroup(ctx context.Context, id int64, update GroupUpdate) (*Group, error)
	DeleteGroup(ctx context.Context, id int64) (*Group, error)
}

// GroupLeadService manages the membership of leads in groups
type GroupLeadService interface {
	GetLeads(ctx context.Context, query LeadQuery) (*LeadPage, error)
	AddLead(ctx context.Context, groupID, leadID int64) error
	RemoveLead(ctx context.Context, groupID, leadID int64) error
}

type GroupRepository interface {
	Find(ctx context.Context) ([]*Group, error)
	// FindByID returns an *ErrNotFound when the group does not exist
	FindByID(ctx context.Context, id int64) (*Group, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, group *Group) error
	UpdateByID(ctx context.Context, id int64, update GroupUpdate) (*Group, error)
	DeleteByID(ctx context.Context, id int64) (*Group, error)

	HasLead(ctx context.Context, groupID, leadID int64) (bool, error)
	// AddLead returns an *ErrConflict when the membership already exists
	AddLead(ctx context.Context, groupID, leadID int64) error
	RemoveLead(ctx context.Context, groupID, leadID int64) error
}
