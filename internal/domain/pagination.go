package domain

import "math"

// ValidatePaging checks that page and pageSize are positive and that the
// row offset of the page fits in an int
func ValidatePaging(page, pageSize int) error {
	if page < 1 {
		return NewValidationError("Invalid page")
	}
	if pageSize < 1 {
		return NewValidationError("Invalid pageSize")
	}
	if page-1 > math.MaxInt/pageSize {
		return NewValidationError("Invalid page")
	}
	return nil
}

// PageMeta is the paging block attached to every list response
type PageMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPageMeta computes the envelope metadata. TotalPages is
// ceil(total / pageSize) and zero when there are no rows.
func NewPageMeta(page, pageSize, total int) PageMeta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}
	return PageMeta{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// LeadPage is a page of leads with its metadata
type LeadPage struct {
	Leads []*Lead  `json:"leads"`
	Meta  PageMeta `json:"meta"`
}

// NewLeadPage wraps leads in the envelope, never encoding a null list
func NewLeadPage(leads []*Lead, query LeadQuery, total int) *LeadPage {
	if leads == nil {
		leads = []*Lead{}
	}
	return &LeadPage{
		Leads: leads,
		Meta:  NewPageMeta(query.Page, query.PageSize, total),
	}
}

// CampaignPage is a page of campaigns with its metadata
type CampaignPage struct {
	Campaigns []*Campaign `json:"campaigns"`
	Meta      PageMeta    `json:"meta"`
}
