package balance

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/splitpot/backend/internal/group"
	"github.com/splitpot/backend/pkg/middleware"
	"github.com/splitpot/backend/pkg/response"
)

// GroupBalancesResponse carries a group's balances together with the
// suggested reimbursement plan
type GroupBalancesResponse struct {
	Balances       map[string]Balance `json:"balances"`
	Reimbursements []Reimbursement    `json:"suggested_reimbursements"`
}

// Handler handles HTTP requests for balance computations
type Handler struct {
	service *Service
}

// NewHandler creates a new balance handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for balance endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/group/{groupId}", h.GetGroupBalances)
	r.Get("/group/{groupId}/public", h.GetPublicBalances)
	r.Get("/group/{groupId}/totals", h.GetGroupTotals)

	return r
}

// GetGroupBalances handles GET /balances/group/{groupId}
// @Summary      Get group balances
// @Description  Per-participant paid/owed/net balances plus the suggested reimbursement plan, recomputed from the group's expenses
// @Tags         balances
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=GroupBalancesResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /balances/group/{groupId} [get]
func (h *Handler) GetGroupBalances(w http.ResponseWriter, r *http.Request) {
	balances, reimbursements, err := h.service.GroupBalances(r.Context(), chi.URLParam(r, "groupId"))
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute balances")
		return
	}

	response.JSON(w, http.StatusOK, &GroupBalancesResponse{
		Balances:       balances,
		Reimbursements: reimbursements,
	})
}

// GetPublicBalances handles GET /balances/group/{groupId}/public
// @Summary      Get public group balances
// @Description  Balances derived from the reimbursement plan alone, hiding per-expense paid/owed detail
// @Tags         balances
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Success      200 {object} response.APIResponse{data=map[string]Balance}
// @Failure      404 {object} response.APIResponse
// @Router       /balances/group/{groupId}/public [get]
func (h *Handler) GetPublicBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.service.PublicBalances(r.Context(), chi.URLParam(r, "groupId"))
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute public balances")
		return
	}

	response.JSON(w, http.StatusOK, balances)
}

// GetGroupTotals handles GET /balances/group/{groupId}/totals
// @Summary      Get group spending totals
// @Description  Group spending excluding reimbursements; includes the caller's paid/share when X-Active-Participant is set
// @Tags         balances
// @Produce      json
// @Param        groupId path string true "Group ID"
// @Param        X-Active-Participant header string false "Active participant ID"
// @Success      200 {object} response.APIResponse{data=Totals}
// @Failure      404 {object} response.APIResponse
// @Router       /balances/group/{groupId}/totals [get]
func (h *Handler) GetGroupTotals(w http.ResponseWriter, r *http.Request) {
	activeParticipant, _ := middleware.GetActiveParticipant(r.Context())
	totals, err := h.service.GroupTotals(r.Context(), chi.URLParam(r, "groupId"), activeParticipant)
	if err != nil {
		if errors.Is(err, group.ErrGroupNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to compute totals")
		return
	}

	response.JSON(w, http.StatusOK, totals)
}
