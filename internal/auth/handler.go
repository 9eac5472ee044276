package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clubvision/clubvision/pkg/response"
)

// Handler handles HTTP requests for OTP login
type Handler struct {
	service *Service
}

// NewHandler creates a new auth handler with service dependency injected
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for auth endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/request-otp", h.RequestOTP)
	r.Post("/verify-otp", h.VerifyOTP)

	return r
}

// RequestOTP handles POST /auth/request-otp
// @Summary      Request an OTP
// @Description  Issue a one-time password for the given phone number
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body OTPRequest true "Phone number"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Router       /auth/request-otp [post]
func (h *Handler) RequestOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.RequestOTP(r.Context(), req.Phone); err != nil {
		if errors.Is(err, ErrInvalidPhone) {
			response.BadRequest(w, "Invalid phone number")
			return
		}
		response.InternalError(w, "Failed to send OTP")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "OTP sent successfully"})
}

// VerifyOTP handles POST /auth/verify-otp
// @Summary      Verify an OTP and log in
// @Description  Verify the one-time password and return a bearer token, creating the account on first login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body OTPVerifyRequest true "Phone number and OTP"
// @Success      200 {object} response.APIResponse{data=LoginResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /auth/verify-otp [post]
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req OTPVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	login, err := h.service.VerifyOTP(r.Context(), req.Phone, req.OTP)
	if err != nil {
		if errors.Is(err, ErrOTPInvalid) {
			response.BadRequest(w, "Invalid or expired OTP")
			return
		}
		response.InternalError(w, "Failed to verify OTP")
		return
	}

	response.JSON(w, http.StatusOK, login)
}
