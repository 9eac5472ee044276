package bulkupload

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/clubvision/clubvision/internal/membership"
	"github.com/clubvision/clubvision/pkg/middleware"
	"github.com/clubvision/clubvision/pkg/response"
)

// maxUploadBytes caps the in-memory part of a multipart upload
const maxUploadBytes = 10 << 20

// Handler handles the admin bulk upload endpoint
type Handler struct {
	service     *Service
	memberships *membership.Service
}

// NewHandler creates a new bulk upload handler with dependencies injected
func NewHandler(service *Service, memberships *membership.Service) *Handler {
	return &Handler{service: service, memberships: memberships}
}

// Upload handles POST /admin/clubs/{clubID}/bulk-upload
// @Summary      Bulk upload club members
// @Description  Upload a CSV of members (columns phone, name, relation, membership_expiry) and create users, dependents, and active memberships. Duplicate memberships are skipped; row failures are reported per row.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        clubID path int true "Club ID"
// @Param        file formData file true "CSV file"
// @Success      200 {object} Report
// @Failure      400 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /admin/clubs/{clubID}/bulk-upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	clubID, err := strconv.ParseInt(chi.URLParam(r, "clubID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid club ID")
		return
	}

	if err := h.memberships.EnsureClubAdmin(r.Context(), userID, clubID); err != nil {
		if errors.Is(err, membership.ErrClubAdminRequired) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to check admin role")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.BadRequest(w, "Failed to read file")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Failed to read file")
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		response.BadRequest(w, "File must be a CSV file")
		return
	}

	report := h.service.Process(r.Context(), clubID, file)

	// The report defines its own top-level shape, including success.
	response.Raw(w, http.StatusOK, report)
}
