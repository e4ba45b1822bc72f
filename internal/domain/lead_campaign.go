package domain

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -destination mocks/mock_campaign_lead_service.go -package mocks github.com/leadflow/leadflow/internal/domain CampaignLeadService

// LeadCampaignStatus is the status of a lead within one campaign
type LeadCampaignStatus string

const (
	LeadCampaignStatusNew               LeadCampaignStatus = "New"
	LeadCampaignStatusEngaged           LeadCampaignStatus = "Engaged"
	LeadCampaignStatusFollowUpScheduled LeadCampaignStatus = "FollowUp_Scheduled"
	LeadCampaignStatusContacted         LeadCampaignStatus = "Contacted"
	LeadCampaignStatusQualified         LeadCampaignStatus = "Qualified"
	LeadCampaignStatusConverted         LeadCampaignStatus = "Converted"
	LeadCampaignStatusUnresponsive      LeadCampaignStatus = "Unresponsive"
	LeadCampaignStatusDisqualified      LeadCampaignStatus = "Disqualified"
	LeadCampaignStatusReEngaged         LeadCampaignStatus = "Re_Engaged"
	LeadCampaignStatusOptedOut          LeadCampaignStatus = "Opted_Out"
)

var LeadCampaignStatuses = []LeadCampaignStatus{
	LeadCampaignStatusNew,
	LeadCampaignStatusEngaged,
	LeadCampaignStatusFollowUpScheduled,
	LeadCampaignStatusContacted,
	LeadCampaignStatusQualified,
	LeadCampaignStatusConverted,
	LeadCampaignStatusUnresponsive,
	LeadCampaignStatusDisqualified,
	LeadCampaignStatusReEngaged,
	LeadCampaignStatusOptedOut,
}

func (s LeadCampaignStatus) Validate() error {
	for _, known := range LeadCampaignStatuses {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("invalid campaign lead status: %q", string(s))
}

// LeadCampaign is the membership of a lead in a campaign. There is at most
// one row per (CampaignID, LeadID).
type LeadCampaign struct {
	CampaignID int64              `json:"campaignId"`
	LeadID     int64              `json:"leadId"`
	Status     LeadCampaignStatus `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// AddCampaignLeadRequest is the body of POST /api/campaigns/{campaignId}/leads
type AddCampaignLeadRequest struct {
	LeadID int64              `json:"leadId"`
	Status LeadCampaignStatus `json:"status,omitempty"`
}

// Validate checks the request and defaults the status to New
func (r *AddCampaignLeadRequest) Validate() error {
	if r.LeadID < 1 {
		return NewValidationError("leadId must be a positive integer")
	}
	if r.Status == "" {
		r.Status = LeadCampaignStatusNew
	}
	if err := r.Status.Validate(); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

// UpdateCampaignLeadStatusRequest is the body of
// PUT /api/campaigns/{campaignId}/leads/{leadId}
type UpdateCampaignLeadStatusRequest struct {
	Status LeadCampaignStatus `json:"status"`
}

func (r *UpdateCampaignLeadStatusRequest) Validate() error {
	if r.Status == "" {
		return NewValidationError("status is required")
	}
	if err := r.Status.Validate(); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}

// CampaignLeadService manages the membership of leads in campaigns
type CampaignLeadService interface {
	GetLeads(ctx context.Context, query LeadQuery) (*LeadPage, error)
	AddLead(ctx context.Context, campaignID, leadID int64, status LeadCampaignStatus) error
	UpdateLeadStatus(ctx context.Context, campaignID, leadID int64, status LeadCampaignStatus) error
	RemoveLead(ctx context.Context, campaignID, leadID int64) error
}
