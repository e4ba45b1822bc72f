package http

import (
	"net/http"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

// GroupLeadHandler serves the leads of a group
type GroupLeadHandler struct {
	service domain.GroupLeadService
	logger  logger.Logger
}

func NewGroupLeadHandler(service domain.GroupLeadService, logger logger.Logger) *GroupLeadHandler {
	return &GroupLeadHandler{
		service: service,
		logger:  logger,
	}
}

func (h *GroupLeadHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/groups/{groupId}/leads", h.handleList)
	mux.HandleFunc("POST /api/groups/{groupId}/leads", h.handleAdd)
	mux.HandleFunc("DELETE /api/groups/{groupId}/leads/{leadId}", h.handleRemove)
}

func (h *GroupLeadHandler) handleList(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r, "groupId")
	if err != nil {
		writeServiceError(w, h.logger, err, "list group leads")
		return
	}

	query := domain.NewLeadQuery(domain.LeadScopeGroup, groupID)
	if err := query.FromURLParams(r.URL.Query()); err != nil {
		writeServiceError(w, h.logger, err, "list group leads")
		return
	}

	page, err := h.service.GetLeads(r.Context(), query)
	if err != nil {
		writeServiceError(w, h.logger, err, "list group leads")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *GroupLeadHandler) handleAdd(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r, "groupId")
	if err != nil {
		writeServiceError(w, h.logger, err, "add lead to group")
		return
	}

	var req domain.AddGroupLeadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "add lead to group")
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, h.logger, err, "add lead to group")
		return
	}

	if err := h.service.AddLead(r.Context(), groupID, req.LeadID); err != nil {
		writeServiceError(w, h.logger, err, "add lead to group")
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (h *GroupLeadHandler) handleRemove(w http.ResponseWriter, r *http.Request) {
	groupID, err := pathID(r, "groupId")
	if err != nil {
		writeServiceError(w, h.logger, err, "remove lead from group")
		return
	}
	leadID, err := pathID(r, "leadId")
	if err != nil {
		writeServiceError(w, h.logger, err, "remove lead from group")
		return
	}

	if err := h.service.RemoveLead(r.Context(), groupID, leadID); err != nil {
		writeServiceError(w, h.logger, err, "remove lead from group")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lead removed from group"})
}
