package auth

import (
	"net/http"

	"buslink/internal/domains/auth/model/dto"
	"buslink/internal/domains/auth/service"
	"buslink/shared/validator"
	"buslink/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	service service.Auth
}

func ProvideAuthHandler(service service.Auth) AuthHandler {
	return AuthHandler{service: service}
}

func (h *AuthHandler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
	})
}

// Register creates a customer account.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "registration payload"
// @Success 201 {object} response.Base
// @Failure 400 {object} response.Base
// @Failure 409 {object} response.Base
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "user registered")
}

// Login exchanges credentials for a token pair.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "credentials"
// @Success 200 {object} response.Base{data=dto.LoginResponse}
// @Failure 401 {object} response.Base
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Refresh rotates a refresh token into a fresh token pair.
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "refresh token"
// @Success 200 {object} response.Base{data=dto.LoginResponse}
// @Failure 401 {object} response.Base
// @Router /v1/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.RefreshToken(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
