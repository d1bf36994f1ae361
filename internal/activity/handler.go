package activity

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/splitpot/backend/pkg/response"
)

// Handler handles HTTP requests for the activity log
type Handler struct {
	service *Service
}

// NewHandler creates a new activity handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for activity endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/group/{groupId}", h.ListByGroup)

	return r
}

// ListByGroup handles GET /activities/group/{groupId}
// @Summary      List group activity
// @Description  List a group's activity log, newest first
// @Tags         activities
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Param        page query int false "Page number (default 1)"
// @Param        per_page query int false "Items per page (default 20, max 100)"
// @Success      200 {object} response.APIResponse{data=[]ActivityResponse}
// @Router       /activities/group/{groupId} [get]
func (h *Handler) ListByGroup(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	activities, total, err := h.service.ListByGroup(r.Context(), chi.URLParam(r, "groupId"), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list activities")
		return
	}

	resp := make([]*ActivityResponse, len(activities))
	for i, a := range activities {
		resp[i] = a.ToResponse()
	}

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	response.JSONWithMeta(w, http.StatusOK, resp, &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: (total + perPage - 1) / perPage,
	})
}
