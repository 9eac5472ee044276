package membership

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clubvision/clubvision/pkg/middleware"
	"github.com/clubvision/clubvision/pkg/response"
)

// Handler handles HTTP requests for membership operations
type Handler struct {
	service *Service
}

// NewHandler creates a new membership handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MyClubs handles GET /me/clubs
// @Summary      List my clubs
// @Description  Get the authenticated user's memberships grouped per club
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]ClubView}
// @Failure      401 {object} response.APIResponse
// @Router       /me/clubs [get]
func (h *Handler) MyClubs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	clubs, err := h.service.GetClubsForUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list clubs")
		return
	}

	response.JSON(w, http.StatusOK, clubs)
}

// AdminClubs handles GET /admin/my-clubs
// @Summary      List clubs I administer
// @Description  Get clubs where the authenticated user has an admin or superadmin role
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]AdminClub}
// @Failure      403 {object} response.APIResponse
// @Router       /admin/my-clubs [get]
func (h *Handler) AdminClubs(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.EnsureAdmin(r.Context(), userID); err != nil {
		h.writeAuthError(w, err)
		return
	}

	clubs, err := h.service.GetAdminClubs(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list admin clubs")
		return
	}

	response.JSON(w, http.StatusOK, clubs)
}

// PendingMembers handles GET /admin/clubs/{clubID}/pending-members
// @Summary      List pending members
// @Description  Get memberships awaiting approval for a club
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        clubID path int true "Club ID"
// @Success      200 {object} response.APIResponse{data=[]PendingMember}
// @Failure      403 {object} response.APIResponse
// @Router       /admin/clubs/{clubID}/pending-members [get]
func (h *Handler) PendingMembers(w http.ResponseWriter, r *http.Request) {
	_, clubID, ok := h.clubAdminContext(w, r)
	if !ok {
		return
	}

	members, err := h.service.PendingForClub(r.Context(), clubID)
	if err != nil {
		response.InternalError(w, "Failed to list pending members")
		return
	}

	response.JSON(w, http.StatusOK, members)
}

// Members handles GET /admin/clubs/{clubID}/members
// @Summary      List club members
// @Description  Get the full member roster for a club
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        clubID path int true "Club ID"
// @Success      200 {object} response.APIResponse{data=[]ClubMember}
// @Failure      403 {object} response.APIResponse
// @Router       /admin/clubs/{clubID}/members [get]
func (h *Handler) Members(w http.ResponseWriter, r *http.Request) {
	_, clubID, ok := h.clubAdminContext(w, r)
	if !ok {
		return
	}

	members, err := h.service.MembersForClub(r.Context(), clubID)
	if err != nil {
		response.InternalError(w, "Failed to list club members")
		return
	}

	response.JSON(w, http.StatusOK, members)
}

// Approve handles POST /admin/memberships/{membershipID}/approve
// @Summary      Approve a membership
// @Description  Set a pending membership's status to active
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        membershipID path int true "Membership ID"
// @Success      200 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/memberships/{membershipID}/approve [post]
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.EnsureAdmin(r.Context(), userID); err != nil {
		h.writeAuthError(w, err)
		return
	}

	membershipID, err := strconv.ParseInt(chi.URLParam(r, "membershipID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid membership ID")
		return
	}

	if err := h.service.Approve(r.Context(), membershipID); err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to approve membership")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Membership approved"})
}

// Reject handles POST /admin/memberships/{membershipID}/reject
// @Summary      Reject a membership
// @Description  Set a membership's status to rejected with a reason
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        membershipID path int true "Membership ID"
// @Param        request body RejectMembershipRequest true "Rejection reason"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /admin/memberships/{membershipID}/reject [post]
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	if err := h.service.EnsureAdmin(r.Context(), userID); err != nil {
		h.writeAuthError(w, err)
		return
	}

	membershipID, err := strconv.ParseInt(chi.URLParam(r, "membershipID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid membership ID")
		return
	}

	var req RejectMembershipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.Reject(r.Context(), membershipID, req.Reason); err != nil {
		switch {
		case errors.Is(err, ErrReasonRequired):
			response.BadRequest(w, err.Error())
		case errors.Is(err, ErrMembershipNotFound):
			response.NotFound(w, err.Error())
		default:
			response.InternalError(w, "Failed to reject membership")
		}
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Membership rejected"})
}

// clubAdminContext extracts the authenticated user and clubID path parameter
// and enforces the club-admin check, writing the error response itself
func (h *Handler) clubAdminContext(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return 0, 0, false
	}

	clubID, err := strconv.ParseInt(chi.URLParam(r, "clubID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid club ID")
		return 0, 0, false
	}

	if err := h.service.EnsureClubAdmin(r.Context(), userID, clubID); err != nil {
		h.writeAuthError(w, err)
		return 0, 0, false
	}

	return userID, clubID, true
}

func (h *Handler) writeAuthError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrAdminRequired) || errors.Is(err, ErrClubAdminRequired) {
		response.Forbidden(w, err.Error())
		return
	}
	response.InternalError(w, "Failed to check admin role")
}
