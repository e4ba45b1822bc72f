package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/tidwall/gjson"
)

//go:generate mockgen -destination mocks/mock_lead_service.go -package mocks github.com/leadflow/leadflow/internal/domain LeadService
//go:generate mockgen -destination mocks/mock_lead_repository.go -package mocks github.com/leadflow/leadflow/internal/domain LeadRepository

// LeadStatus is the sales pipeline status of a lead
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "New"
	LeadStatusContacted    LeadStatus = "Contacted"
	LeadStatusQualified    LeadStatus = "Qualified"
	LeadStatusConverted    LeadStatus = "Converted"
	LeadStatusUnresponsive LeadStatus = "Unresponsive"
	LeadStatusDisqualified LeadStatus = "Disqualified"
	LeadStatusArchived     LeadStatus = "Archived"
)

// LeadStatuses lists every valid lead status
var LeadStatuses = []LeadStatus{
	LeadStatusNew,
	LeadStatusContacted,
	LeadStatusQualified,
	LeadStatusConverted,
	LeadStatusUnresponsive,
	LeadStatusDisqualified,
	LeadStatusArchived,
}

// Validate checks that the status is one of the known values
func (s LeadStatus) Validate() error {
	for _, known := range LeadStatuses {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("invalid lead status: %q", string(s))
}

// Lead represents a marketing prospect
type Lead struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Status    LeadStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	// Campaign is set when the lead is listed within a campaign and holds
	// the membership row for that campaign
	Campaign *LeadCampaign `json:"campaign,omitempty"`
}

// Column limits shared by create and update validation
const (
	MaxNameLength  = 255
	MaxEmailLength = 255
	MaxPhoneLength = 32
)

// Validate performs validation on the lead fields
func (l *Lead) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("invalid lead: name is required")
	}
	if len(l.Name) > MaxNameLength {
		return fmt.Errorf("invalid lead: name length must be between 1 and %d", MaxNameLength)
	}
	if l.Email == "" {
		return fmt.Errorf("invalid lead: email is required")
	}
	if len(l.Email) > MaxEmailLength {
		return fmt.Errorf("invalid lead: email length must be at most %d", MaxEmailLength)
	}
	if !govalidator.IsEmail(l.Email) {
		return fmt.Errorf("invalid lead: email is not valid")
	}
	if l.Phone == "" {
		return fmt.Errorf("invalid lead: phone is required")
	}
	if len(l.Phone) > MaxPhoneLength {
		return fmt.Errorf("invalid lead: phone length must be between 1 and %d", MaxPhoneLength)
	}
	if err := l.Status.Validate(); err != nil {
		return fmt.Errorf("invalid lead: %w", err)
	}
	return nil
}

// ScanLead scans a lead row (id, name, email, phone, status, created_at, updated_at)
func ScanLead(scanner interface {
	Scan(dest ...interface{}) error
}) (*Lead, error) {
	var l Lead
	var status string
	if err := scanner.Scan(
		&l.ID,
		&l.Name,
		&l.Email,
		&l.Phone,
		&status,
		&l.CreatedAt,
		&l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	l.Status = LeadStatus(status)
	return &l, nil
}

// LeadUpdate holds the fields of a partial lead update. Nil fields are left
// untouched.
type LeadUpdate struct {
	Name   *string
	Email  *string
	Phone  *string
	Status *LeadStatus
}

// IsEmpty reports whether the update carries no field at all
func (u LeadUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.Phone == nil && u.Status == nil
}

// Request/Response types
type CreateLeadRequest struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Phone  string     `json:"phone"`
	Status LeadStatus `json:"status,omitempty"`
}

// Validate builds the lead to create. A missing status defaults to New.
func (r *CreateLeadRequest) Validate() (*Lead, error) {
	lead := &Lead{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Status: r.Status,
	}
	if lead.Status == "" {
		lead.Status = LeadStatusNew
	}
	if err := lead.Validate(); err != nil {
		return nil, NewValidationError(strings.TrimPrefix(err.Error(), "invalid lead: "))
	}
	return lead, nil
}

// UpdateLeadRequest decodes a partial lead update. Fields absent from the
// body are not modified; explicit nulls are rejected.
type UpdateLeadRequest struct {
	Update LeadUpdate
}

func (r *UpdateLeadRequest) FromJSON(data []byte) error {
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
	if r.Update.Email, err = optionalString(root, "email"); err != nil {
		return err
	}
	if r.Update.Phone, err = optionalString(root, "phone"); err != nil {
		return err
	}
	status, err := optionalString(root, "status")
	if err != nil {
		return err
	}
	if status != nil {
		s := LeadStatus(*status)
		if err := s.Validate(); err != nil {
			return NewValidationError(err.Error())
		}
		r.Update.Status = &s
	}

	if err := validateName(r.Update.Name); err != nil {
		return err
	}
	if r.Update.Email != nil {
		if len(*r.Update.Email) > MaxEmailLength {
			return NewValidationError(fmt.Sprintf("email length must be at most %d", MaxEmailLength))
		}
		if !govalidator.IsEmail(*r.Update.Email) {
			return NewValidationError("email is not valid")
		}
	}
	if r.Update.Phone != nil {
		if *r.Update.Phone == "" {
			return NewValidationError("phone cannot be empty")
		}
		if len(*r.Update.Phone) > MaxPhoneLength {
			return NewValidationError(fmt.Sprintf("phone length must be between 1 and %d", MaxPhoneLength))
		}
	}
	if r.Update.IsEmpty() {
		return NewValidationError("at least one field must be provided")
	}
	return nil
}

// validateName checks an optional name from a partial update
func validateName(name *string) error {
	if name == nil {
		return nil
	}
	if strings.TrimSpace(*name) == "" {
		return NewValidationError("name cannot be empty")
	}
	if len(*name) > MaxNameLength {
		return NewValidationError(fmt.Sprintf("name length must be between 1 and %d", MaxNameLength))
	}
	return nil
}

// optionalString returns nil when the key is absent and an error when it is
// present but not a string
func optionalString(root gjson.Result, key string) (*string, error) {
	v := root.Get(key)
	if !v.Exists() {
		return nil, nil
	}
	if v.Type != gjson.String {
		return nil, NewValidationError(fmt.Sprintf("%s must be a string", key))
	}
	s := v.String()
	return &s, nil
}

// LeadService manages leads and enforces the status lifecycle
type LeadService interface {
	ListLeads(ctx context.Context, query LeadQuery) (*LeadPage, error)
	GetLead(ctx context.Context, id int64) (*Lead, error)
	CreateLead(ctx context.Context, lead *Lead) error
	UpdateLead(ctx context.Context, id int64, update LeadUpdate) (*Lead, error)
	DeleteLead(ctx context.Context, id int64) (*Lead, error)
}

// LeadRepository is the persistence contract for leads. Find and Count
// receive the same query and must apply the same filters.
type LeadRepository interface {
	Find(ctx context.Context, query LeadQuery) ([]*Lead, error)
	Count(ctx context.Context, query LeadQuery) (int, error)
	// FindByID returns an *ErrNotFound when the lead does not exist
	FindByID(ctx context.Context, id int64) (*Lead, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, lead *Lead) error
	UpdateByID(ctx context.Context, id int64, update LeadUpdate) (*Lead, error)
	DeleteByID(ctx context.Context, id int64) (*Lead, error)
}
