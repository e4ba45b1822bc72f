package http

import (
	"net/http"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

type CampaignHandler struct {
	service domain.CampaignService
	logger  logger.Logger
}

func NewCampaignHandler(service domain.CampaignService, logger logger.Logger) *CampaignHandler {
	return &CampaignHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CampaignHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/campaigns", h.handleList)
	mux.HandleFunc("POST /api/campaigns", h.handleCreate)
	mux.HandleFunc("GET /api/campaigns/{id}", h.handleGet)
	mux.HandleFunc("PUT /api/campaigns/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/campaigns/{id}", h.handleDelete)
}

func (h *CampaignHandler) handleList(w http.ResponseWriter, r *http.Request) {
	var req domain.ListCampaignsRequest
	if err := req.FromURLParams(r.URL.Query()); err != nil {
		writeServiceError(w, h.logger, err, "list campaigns")
		return
	}

	page, err := h.service.ListCampaigns(r.Context(), req.Page, req.PageSize)
	if err != nil {
		writeServiceError(w, h.logger, err, "list campaigns")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *CampaignHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCampaignRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "create campaign")
		return
	}

	campaign, err := req.Validate()
	if err != nil {
		writeServiceError(w, h.logger, err, "create campaign")
		return
	}

	if err := h.service.CreateCampaign(r.Context(), campaign); err != nil {
		writeServiceError(w, h.logger, err, "create campaign")
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "get campaign")
		return
	}

	campaign, err := h.service.GetCampaign(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "get campaign")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "update campaign")
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeServiceError(w, h.logger, err, "update campaign")
		return
	}
	var req domain.UpdateCampaignRequest
	if err := req.FromJSON(body); err != nil {
		writeServiceError(w, h.logger, err, "update campaign")
		return
	}

	campaign, err := h.service.UpdateCampaign(r.Context(), id, req.Update)
	if err != nil {
		writeServiceError(w, h.logger, err, "update campaign")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "delete campaign")
		return
	}

	campaign, err := h.service.DeleteCampaign(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "delete campaign")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deletedCampaign": campaign,
	})
}
