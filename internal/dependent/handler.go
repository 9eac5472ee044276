package dependent

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubvision/clubvision/pkg/middleware"
	"github.com/clubvision/clubvision/pkg/response"
)

// Handler handles HTTP requests for dependent operations
type Handler struct {
	service *Service
}

// NewHandler creates a new dependent handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for dependent endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/", h.Create)

	return r
}

// List handles GET /me/dependents
// @Summary      List my dependents
// @Description  Get all dependents of the authenticated user, newest first
// @Tags         dependents
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.APIResponse{data=[]DependentResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /me/dependents [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	dependents, err := h.service.ListForUser(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list dependents")
		return
	}

	dependentResponses := make([]*DependentResponse, len(dependents))
	for i, dep := range dependents {
		dependentResponses[i] = dep.ToResponse()
	}

	response.JSON(w, http.StatusOK, dependentResponses)
}

// Create handles POST /me/dependents
// @Summary      Add a dependent
// @Description  Add a dependent (family member) to the authenticated user's account
// @Tags         dependents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateDependentRequest true "Dependent creation request"
// @Success      201 {object} response.APIResponse{data=DependentResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /me/dependents [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req CreateDependentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	dep, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrNameRequired) || errors.Is(err, ErrRelationRequired) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create dependent")
		return
	}

	response.JSON(w, http.StatusCreated, dep.ToResponse())
}
