package domain

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_campaign_service.go -package mocks github.com/leadflow/leadflow/internal/domain CampaignService
//go:generate mockgen -destination mocks/mock_campaign_repository.go -package mocks github.com/leadflow/leadflow/internal/domain CampaignRepository

// Campaign is a time-boxed marketing action leads can take part in
type Campaign struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Validate performs validation on the campaign fields
func (c *Campaign) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("invalid campaign: name is required")
	}
	if len(c.Name) > MaxNameLength {
		return fmt.Errorf("invalid campaign: name length must be between 1 and 255")
	}
	if c.StartDate.IsZero() {
		return fmt.Errorf("invalid campaign: startDate is required")
	}
	if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("invalid campaign: endDate must not be before startDate")
	}
	return nil
}

// ScanCampaign scans a campaign row
// (id, name, description, start_date, end_date, created_at, updated_at)
func ScanCampaign(scanner interface {
	Scan(dest ...interface{}) error
}) (*Campaign, error) {
	var c Campaign
	if err := scanner.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.StartDate,
		&c.EndDate,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// CampaignUpdate holds the fields of a partial campaign update.
// ClearEndDate removes the end date and takes precedence over EndDate.
type CampaignUpdate struct {
	Name         *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
}

func (u CampaignUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.StartDate == nil && u.EndDate == nil && !u.ClearEndDate
}

// Apply returns a copy of c with the update applied, used to validate the
// resulting date range before it is written
func (u CampaignUpdate) Apply(c Campaign) Campaign {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.StartDate != nil {
		c.StartDate = *u.StartDate
	}
	if u.ClearEndDate {
		c.EndDate = nil
	} else if u.EndDate != nil {
		end := *u.EndDate
		c.EndDate = &end
	}
	return c
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates (UTC)
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC 3339", value)
}

type CreateCampaignRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

func (r *CreateCampaignRequest) Validate() (*Campaign, error) {
	if r.StartDate == "" {
		return nil, NewValidationError("startDate is required")
	}
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("startDate: %v", err))
	}
	campaign := &Campaign{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
	}
	if r.EndDate != nil {
		end, err := ParseDate(*r.EndDate)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("endDate: %v", err))
		}
		campaign.EndDate = &end
	}
	if err := campaign.Validate(); err != nil {
		return nil, NewValidationError(strings.TrimPrefix(err.Error(), "invalid campaign: "))
	}
	return campaign, nil
}

// UpdateCampaignRequest decodes a partial campaign update. An explicit
// "endDate": null clears the end date, an absent endDate keeps it.
type UpdateCampaignRequest struct {
	Update CampaignUpdate
}

func (r *UpdateCampaignRequest) FromJSON(data []byte) error {
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

	start, err := optionalString(root, "startDate")
	if err != nil {
		return err
	}
	if start != nil {
		t, err := ParseDate(*start)
		if err != nil {
			return NewValidationError(fmt.Sprintf("startDate: %v", err))
		}
		r.Update.StartDate = &t
	}

	if end := root.Get("endDate"); end.Exists() {
		switch end.Type {
		case gjson.Null:
			r.Update.ClearEndDate = true
		case gjson.String:
			t, err := ParseDate(end.String())
			if err != nil {
				return NewValidationError(fmt.Sprintf("endDate: %v", err))
			}
			r.Update.EndDate = &t
		default:
			return NewValidationError("endDate must be a string or null")
		}
	}

	if r.Update.IsEmpty() {
		return NewValidationError("at least one field must be provided")
	}
	return nil
}

// ListCampaignsRequest carries the paging of GET /api/campaigns
type ListCampaignsRequest struct {
	Page     int
	PageSize int
}

func (r *ListCampaignsRequest) FromURLParams(params url.Values) error {
	var err error
	if r.Page, err = parsePositiveInt(params.Get("page"), DefaultPage, "Invalid page"); err != nil {
		return err
	}
	if r.PageSize, err = parsePositiveInt(params.Get("pageSize"), DefaultPageSize, "Invalid pageSize"); err != nil {
		return err
	}
	return ValidatePaging(r.Page, r.PageSize)
}

type CampaignService interface {
	ListCampaigns(ctx context.Context, page, pageSize int) (*CampaignPage, error)
	GetCampaign(ctx context.Context, id int64) (*Campaign, error)
	CreateCampaign(ctx context.Context, campaign *Campaign) error
	UpdateCampaign(ctx context.Context, id int64, update CampaignUpdate) (*Campaign, error)
	DeleteCampaign(ctx context.Context, id int64) (*Campaign, error)
}

// CampaignRepository persists campaigns and their lead memberships
type CampaignRepository interface {
	Find(ctx context.Context, limit, offset int) ([]*Campaign, error)
	Count(ctx context.Context) (int, error)
	// FindByID returns an *ErrNotFound when the campaign does not exist
	FindByID(ctx context.Context, id int64) (*Campaign, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, campaign *Campaign) error
	UpdateByID(ctx context.Context, id int64, update CampaignUpdate) (*Campaign, error)
	DeleteByID(ctx context.Context, id int64) (*Campaign, error)

	// GetLeadInCampaign returns nil without error when the lead is not a member
	GetLeadInCampaign(ctx context.Context, campaignID, leadID int64) (*LeadCampaign, error)
	// AddLead returns an *ErrConflict when the membership already exists
	AddLead(ctx context.Context, membership *LeadCampaign) error
	UpdateLeadStatus(ctx context.Context, membership *LeadCampaign) error
	RemoveLead(ctx context.Context, campaignID, leadID int64) error
}
