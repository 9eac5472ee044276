package eventpass

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clubvision/clubvision/internal/membership"
	"github.com/clubvision/clubvision/pkg/middleware"
	"github.com/clubvision/clubvision/pkg/response"
)

// GeneratePassRequest represents the request body for generating a pass
type GeneratePassRequest struct {
	DependentID *int64 `json:"dependent_id,omitempty"`
}

// PassCodeResponse carries a freshly generated pass code
type PassCodeResponse struct {
	PassCode string `json:"pass_code"`
}

// Handler handles HTTP requests for event pass operations
type Handler struct {
	service     *Service
	memberships *membership.Service
}

// NewHandler creates a new event pass handler with dependencies injected
func NewHandler(service *Service, memberships *membership.Service) *Handler {
	return &Handler{service: service, memberships: memberships}
}

// MyPasses handles GET /me/passes
// @Summary      List my event passes
// @Description  Get all event passes of the authenticated user with event and club context
// @Tags         passes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]PassView}
// @Failure      401 {object} response.APIResponse
// @Router       /me/passes [get]
func (h *Handler) MyPasses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	passes, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list passes")
		return
	}

	response.JSON(w, http.StatusOK, passes)
}

// MyPassesForEvent handles GET /events/{eventID}/passes/me
// @Summary      List my passes for an event
// @Description  Get the dependent IDs of the authenticated user's passes for an event (null means self)
// @Tags         passes
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path int true "Event ID"
// @Success      200 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /events/{eventID}/passes/me [get]
func (h *Handler) MyPassesForEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	ids, err := h.service.ListDependentIDsForUserEvent(r.Context(), eventID, userID)
	if err != nil {
		response.InternalError(w, "Failed to list passes")
		return
	}

	response.JSON(w, http.StatusOK, ids)
}

// Generate handles POST /events/{eventID}/passes
// @Summary      Generate an event pass
// @Description  Generate a pass for the authenticated user or one of their dependents; requires an active membership in the event's club
// @Tags         passes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path int true "Event ID"
// @Param        request body GeneratePassRequest true "Optional dependent"
// @Success      201 {object} response.APIResponse{data=PassCodeResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /events/{eventID}/passes [post]
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	eventID, err := strconv.ParseInt(chi.URLParam(r, "eventID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid event ID")
		return
	}

	var req GeneratePassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	passCode, err := h.service.Generate(r.Context(), eventID, userID, req.DependentID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMembershipNotActive):
			response.Forbidden(w, "Membership not approved. Only active members can generate event passes.")
		case errors.Is(err, ErrPassExists):
			response.BadRequest(w, "Pass already exists")
		default:
			response.InternalError(w, "Failed to generate pass")
		}
		return
	}

	response.JSON(w, http.StatusCreated, &PassCodeResponse{PassCode: passCode})
}

// ClubPasses handles GET /admin/clubs/{clubID}/passes
// @Summary      List a club's event passes
// @Description  Get all event passes issued for a club's events
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        clubID path int true "Club ID"
// @Success      200 {object} response.APIResponse{data=[]ClubPass}
// @Failure      403 {object} response.APIResponse
// @Router       /admin/clubs/{clubID}/passes [get]
func (h *Handler) ClubPasses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.memberships.EnsureAdmin(r.Context(), userID); err != nil {
		if errors.Is(err, membership.ErrAdminRequired) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to check admin role")
		return
	}

	clubID, err := strconv.ParseInt(chi.URLParam(r, "clubID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid club ID")
		return
	}

	passes, err := h.service.ListForClub(r.Context(), clubID)
	if err != nil {
		response.InternalError(w, "Failed to list club passes")
		return
	}

	response.JSON(w, http.StatusOK, passes)
}
