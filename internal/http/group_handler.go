package http

import (
	"net/http"

	"github.com/leadflow/leadflow/internal/domain"
	"github.com/leadflow/leadflow/pkg/logger"
)

type GroupHandler struct {
	service domain.GroupService
	logger  logger.Logger
}

func NewGroupHandler(service domain.GroupService, logger logger.Logger) *GroupHandler {
	return &GroupHandler{
		service: service,
		logger:  logger,
	}
}

func (h *GroupHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/groups", h.handleList)
	mux.HandleFunc("POST /api/groups", h.handleCreate)
	mux.HandleFunc("GET /api/groups/{id}", h.handleGet)
	mux.HandleFunc("PUT /api/groups/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /api/groups/{id}", h.handleDelete)
}

func (h *GroupHandler) handleList(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGroups(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "list groups")
		return
	}
	writeJSON(w, http.StatusOK, groups)
}

func (h *GroupHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateGroupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, h.logger, err, "create group")
		return
	}

	group, err := req.Validate()
	if err != nil {
		writeServiceError(w, h.logger, err, "create group")
		return
	}

	if err := h.service.CreateGroup(r.Context(), group); err != nil {
		writeServiceError(w, h.logger, err, "create group")
		return
	}
	writeJSON(w, http.StatusCreated, group)
}

func (h *GroupHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "get group")
		return
	}

	group, err := h.service.GetGroup(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "get group")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "update group")
		return
	}

	body, err := readBody(r)
	if err != nil {
		writeServiceError(w, h.logger, err, "update group")
		return
	}
	var req domain.UpdateGroupRequest
	if err := req.FromJSON(body); err != nil {
		writeServiceError(w, h.logger, err, "update group")
		return
	}

	group, err := h.service.UpdateGroup(r.Context(), id, req.Update)
	if err != nil {
		writeServiceError(w, h.logger, err, "update group")
		return
	}
	writeJSON(w, http.StatusOK, group)
}

func (h *GroupHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeServiceError(w, h.logger, err, "delete group")
		return
	}

	group, err := h.service.DeleteGroup(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err, "delete group")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"deletedGroup": group,
	})
}
