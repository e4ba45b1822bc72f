package http

import (
	"net/http"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

// CampaignLeadHandler serves the leads of a campaign and their
// per-campaign status
type CampaignLeadHandler struct {
	service domain.CampaignLeadService
	logger  logger.Logger
}

func NewCampaignLeadHandler(service domain.CampaignLeadService, logger logger.Logger) *CampaignLeadHandler {
	return &CampaignLeadHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CampaignLeadHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/campaigns/{campaignId}/leads", h.handleList)
	mux.HandleFunc("POST /api/campaigns/{campaignId}/leads", h.handleAdd)
	mux.HandleFunc("PUT /api/campaigns/{campaignId}/leads/{leadId}", h.handleUpdateStatus)
	mux.HandleFunc("DELETE /api/campaigns/{campaignId}/leads/{leadId}", h.handleRemove)
}

func (h *CampaignLeadHandler) handleList(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, "campaignId")
	if err != nil {
		writeServiceError(w, h.logger, err, "list campaign leads")
		return
	}

	query := domain.NewLeadQuery(domain.LeadScopeCampaign, campaignID)
	if err := query.FromURLParams(r.URL.Query()); err != nil {
		writeServiceError(w, h.logger, err, "list campaign leads")
		return
	}

	page, err := h.service.GetLeads(r.Context(), query)
	if err != nil {
		writeServiceError(w, h.logger, err, "list campaign leads")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CampaignLeadHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	campaignID, err := pathID(r, "campaignId")
	if err != nil {
		writeServiceError(w, h.logger, err, "add lead to campaign")
		return
	}

	var req domain.AddCampaignLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "add lead to campaign")
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "add lead to campaign")
		return
	}

	if err := h.service.AddLead(r.Context(), campaignID, req.LeadID, req.Status); err != nil {
		writeServiceError(w, h.logger, err, "add lead to campaign")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *CampaignLeadHandler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	campaignID, leadID, err := membershipIDs(r)
	if err != nil {
		writeServiceError(w, h.logger, err, "update campaign lead status")
		return
	}

	var req domain.UpdateCampaignLeadStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "update campaign lead status")
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "update campaign lead status")
		return
	}

	if err := h.service.UpdateLeadStatus(r.Context(), campaignID, leadID, req.Status); err != nil {
		writeServiceError(w, h.logger, err, "update campaign lead status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead status updated"})
}

func (h *CampaignLeadHandler) handleRemove(w http.ResponseWriter, r *http.Request) {
	campaignID, leadID, err := membershipIDs(r)
	if err != nil {
		writeServiceError(w, h.logger, err, "remove lead from campaign")
		return
	}

	if err := h.service.RemoveLead(r.Context(), campaignID, leadID); err != nil {
		writeServiceError(w, h.logger, err, "remove lead from campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead removed from campaign"})
}

func membershipIDs(r *http.Request) (campaignID, leadID int64, err error) {
	if campaignID, err = pathID(r, "campaignId"); err != nil {
		return 0, 0, err
	}
	if leadID, err = pathID(r, "leadId"); err != nil {
		return 0, 0, err
	}
	return campaignID, leadID, nil
}
