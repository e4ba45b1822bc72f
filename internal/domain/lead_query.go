package domain

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// LeadScope selects which leads a LeadQuery ranges over
type LeadScope string

const (
	LeadScopeAll      LeadScope = "all"
	LeadScopeGroup    LeadScope = "group"
	LeadScopeCampaign LeadScope = "campaign"
)

// LeadSortField names a sortable lead attribute
type LeadSortField string

const (
	LeadSortByName      LeadSortField = "name"
	LeadSortByStatus    LeadSortField = "status"
	LeadSortByCreatedAt LeadSortField = "createdAt"
)

// SortOrder is the direction of a sort
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// LeadQuery describes a page of leads, optionally restricted to the members
// of a group or a campaign
type LeadQuery struct {
	Scope    LeadScope
	ScopeID  int64
	Page     int
	PageSize int
	// Name filters on a case-insensitive substring of the lead name
	Name string
	// Status is a LeadStatus for the all and group scopes and a
	// LeadCampaignStatus for the campaign scope
	Status string
	SortBy LeadSortField
	Order  SortOrder
}

// NewLeadQuery returns a query with default paging and sorting
func NewLeadQuery(scope LeadScope, scopeID int64) LeadQuery {
	return LeadQuery{
		Scope:    scope,
		ScopeID:  scopeID,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		SortBy:   LeadSortByName,
		Order:    SortAsc,
	}
}

// Offset is the number of rows skipped before the page starts
func (q LeadQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

// Limit is the maximum number of rows in the page
func (q LeadQuery) Limit() int {
	return q.PageSize
}

// SortFields returns the sort fields accepted for the query scope
func (q LeadQuery) SortFields() []LeadSortField {
	if q.Scope == LeadScopeCampaign {
		return []LeadSortField{LeadSortByName, LeadSortByCreatedAt}
	}
	return []LeadSortField{LeadSortByName, LeadSortByStatus, LeadSortByCreatedAt}
}

// Validate checks paging, status and sorting against the query scope
func (q LeadQuery) Validate() error {
	switch q.Scope {
	case LeadScopeAll:
	case LeadScopeGroup, LeadScopeCampaign:
		if q.ScopeID <= 0 {
			return NewValidationError(fmt.Sprintf("%s id must be a positive integer", q.Scope))
		}
	default:
		return NewValidationError(fmt.Sprintf("unknown lead scope: %q", q.Scope))
	}

	if err := ValidatePaging(q.Page, q.PageSize); err != nil {
		return err
	}

	if q.Status != "" {
		var err error
		if q.Scope == LeadScopeCampaign {
			err = LeadCampaignStatus(q.Status).Validate()
		} else {
			err = LeadStatus(q.Status).Validate()
		}
		if err != nil {
			return NewValidationError(err.Error())
		}
	}

	allowed := false
	for _, f := range q.SortFields() {
		if q.SortBy == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return NewValidationError(fmt.Sprintf("invalid sortBy: %q", string(q.SortBy)))
	}

	if q.Order != SortAsc && q.Order != SortDesc {
		return NewValidationError(fmt.Sprintf("invalid order: %q", string(q.Order)))
	}
	return nil
}

// FromURLParams fills paging, filters and sorting from query string values.
// Scope and ScopeID are expected to be set by the caller beforehand.
func (q *LeadQuery) FromURLParams(params url.Values) error {
	if q.Scope == "" {
		q.Scope = LeadScopeAll
	}

	page, err := parsePositiveInt(params.Get("page"), DefaultPage, "Invalid page")
	if err != nil {
		return err
	}
	pageSize, err := parsePositiveInt(params.Get("pageSize"), DefaultPageSize, "Invalid pageSize")
	if err != nil {
		return err
	}
	q.Page = page
	q.PageSize = pageSize

	q.Name = params.Get("name")
	q.Status = params.Get("status")

	q.SortBy = LeadSortByName
	if v := params.Get("sortBy"); v != "" {
		q.SortBy = LeadSortField(v)
	}
	q.Order = SortAsc
	if v := params.Get("order"); v != "" {
		q.Order = SortOrder(strings.ToLower(v))
	}

	return q.Validate()
}

// parsePositiveInt converts a query string value, using def when it is empty.
// Non-numeric and non-positive values are rejected, never clamped.
func parsePositiveInt(raw string, def int, message string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, NewValidationError(message)
	}
	return n, nil
}

// ParseID converts a path parameter into a positive identifier
func ParseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, NewValidationError(fmt.Sprintf("%s must be a positive integer", name))
	}
	return id, nil
}
