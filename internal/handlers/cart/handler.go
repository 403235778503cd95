package cart

import (
	"net/http"

	"buslink/internal/domains/cart/model/dto"
	"buslink/internal/domains/cart/service"
	"buslink/shared/constant"
	"buslink/shared/validator"
	"buslink/transport/http/middleware"
	"buslink/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	service  service.Cart
	authRole *middleware.AuthRole
}

func ProvideCartHandler(service service.Cart, authRole *middleware.AuthRole) CartHandler {
	return CartHandler{service: service, authRole: authRole}
}

func (h *CartHandler) Router(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Use(h.authRole.Auth)

		r.Get("/", h.List)
		r.Post("/", h.AddItem)
		r.Delete("/{id}", h.RemoveItem)
		r.Delete("/", h.Clear)
	})
}

// List returns the caller's cart lines and their combined total.
// @Summary View cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.Base{data=dto.GetCartResponse}
// @Security BearerAuth
// @Router /v1/cart [get]
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.List(r.Context())
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// AddItem puts a route on the caller's cart.
// @Summary Add to cart
// @Tags cart
// @Accept json
// @Produce json
// @Param request body dto.AddCartItemRequest true "cart line"
// @Success 201 {object} response.Base{data=dto.CartItemResponse}
// @Failure 400 {object} response.Base
// @Failure 404 {object} response.Base
// @Security BearerAuth
// @Router /v1/cart [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.AddItem(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// RemoveItem drops one line from the caller's cart.
// @Summary Remove a cart line
// @Tags cart
// @Produce json
// @Param id path string true "cart item id"
// @Success 200 {object} response.Base
// @Security BearerAuth
// @Router /v1/cart/{id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.RemoveItem(r.Context(), id); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "cart item removed")
}

// Clear empties the caller's cart.
// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} response.Base
// @Security BearerAuth
// @Router /v1/cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "cart cleared")
}
