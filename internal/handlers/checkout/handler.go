package checkout

import (
	"net/http"

	"buslink/internal/domains/checkout/model/dto"
	"buslink/internal/domains/checkout/service"
	"buslink/shared/validator"
	"buslink/transport/http/middleware"
	"buslink/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type CheckoutHandler struct {
	service  service.Checkout
	authRole *middleware.AuthRole
}

func ProvideCheckoutHandler(service service.Checkout, authRole *middleware.AuthRole) CheckoutHandler {
	return CheckoutHandler{service: service, authRole: authRole}
}

func (h *CheckoutHandler) Router(r chi.Router) {
	r.Route("/checkout", func(r chi.Router) {
		r.Use(h.authRole.Auth)

		r.Post("/", h.Checkout)
	})
}

// Checkout converts the caller's cart into bookings.
// @Summary Check out the cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body dto.CheckoutRequest true "declared total and payment method"
// @Success 200 {object} response.Base{data=dto.CheckoutResponse}
// @Failure 400 {object} response.Base
// @Security BearerAuth
// @Router /v1/checkout [post]
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
