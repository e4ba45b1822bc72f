package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a referenced lead, group, campaign or
// membership does not exist
type ErrNotFound struct {
	Message string
}

func (e *ErrNotFound) Error() string {
	return e.Message
}

// NewNotFoundError creates a not found error carrying a client-facing message
func NewNotFoundError(message string) error {
	return &ErrNotFound{Message: message}
}

// ErrConflict is returned when a write would violate uniqueness, such as
// adding a lead twice to the same group or campaign
type ErrConflict struct {
	Message string
}

func (e *ErrConflict) Error() string {
	return e.Message
}

// NewConflictError creates a conflict error carrying a client-facing message
func NewConflictError(message string) error {
	return &ErrConflict{Message: message}
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// Messages returned to API clients
const (
	MsgLeadNotFound            = "lead not found"
	MsgGroupNotFound           = "group not found"
	MsgCampaignNotFound        = "campaign not found"
	MsgGroupMissing            = "Group not found"
	MsgLeadMissing             = "Lead not found"
	MsgCampaignMissing         = "Campaign not found"
	MsgCampaignOrLeadNotFound  = "Campaign or lead not found"
	MsgLeadNotInGroup          = "Lead not associated with this group"
	MsgLeadNotInCampaign       = "Lead is not associated with this campaign"
	MsgLeadAlreadyInGroup      = "Lead is already in this group"
	MsgLeadAlreadyInCampaign   = "Lead is already in this campaign"
	MsgNewLeadMustBeContacted  = "a new lead can only be contacted before having its status updated to other values"
	MsgArchiveRequiresInactive = "a lead can only be archived after 6 months of inactivity"
)

// IsNotFound reports whether err is or wraps an ErrNotFound
func IsNotFound(err error) bool {
	var target *ErrNotFound
	return errors.As(err, &target)
}

// IsConflict reports whether err is or wraps an ErrConflict
func IsConflict(err error) bool {
	var target *ErrConflict
	return errors.As(err, &target)
}

// IsValidation reports whether err is or wraps a ValidationError
func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
