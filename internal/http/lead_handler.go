package http

import (
	"net/http"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

type LeadHandler struct {
	service domain.LeadService
	logger  logger.Logger
}

func NewLeadHandler(service domain.LeadService, logger logger.Logger) *LeadHandler {
	return &LeadHandler{
		service: service,
		logger:  logger,
	}
}

func (h *LeadHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/leads", h.handleList)
	mux.HandleFunc("POST /api/leads", h.handleCreate)
	mux.HandleFunc("GET /api/leads/{id}", h.handleGet)
	mux.HandleFunc("PUT /api/leads/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/leads/{id}", h.handleDelete)
}

func (h *LeadHandler) handleList(w http.ResponseWriter, r *http.Request) {
	query := domain.NewLeadQuery(domain.LeadScopeAll, 0)
	if err := query.FromURLParams(r.URL.Query()); err != nil {
		writeServiceError(w, h.logger, err, "list leads")
		return
	}

	page, err := h.service.ListLeads(r.Context(), query)
	if err != nil {
		writeServiceError(w, h.logger, err, "list leads")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *LeadHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "create lead")
		return
	}

	lead, err := req.Validate()
	if err != nil {
		writeServiceError(w, h.logger, err, "create lead")
		return
	}

	if err := h.service.CreateLead(r.Context(), lead); err != nil {
		writeServiceError(w, h.logger, err, "create lead")
		return
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "get lead")
		return
	}

	lead, err := h.service.GetLead(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "get lead")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "update lead")
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeServiceError(w, h.logger, err, "update lead")
		return
	}
	var req domain.UpdateLeadRequest
	if err := req.FromJSON(body); err != nil {
		writeServiceError(w, h.logger, err, "update lead")
		return
	}

	lead, err := h.service.UpdateLead(r.Context(), id, req.Update)
	if err != nil {
		writeServiceError(w, h.logger, err, "update lead")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "delete lead")
		return
	}

	lead, err := h.service.DeleteLead(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "delete lead")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deletedLead": lead,
	})
}
