package booking

import (
	"net/http"

	"buslink/internal/domains/booking/model/dto"
	"buslink/internal/domains/booking/service"
	"buslink/permissions"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"
	"buslink/shared/validator"
	"buslink/transport/http/middleware"
	"buslink/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type BookingHandler struct {
	service  service.Booking
	authRole *middleware.AuthRole
}

func ProvideBookingHandler(service service.Booking, authRole *middleware.AuthRole) BookingHandler {
	return BookingHandler{service: service, authRole: authRole}
}

func (h *BookingHandler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Use(h.authRole.Auth)

		r.Get("/mybookings", h.GetMyBookings)
		r.Get("/{id}", h.Get)

		r.With(h.authRole.HasPermission(permissions.BookingReadAll)).Get("/", h.GetAll)
		r.With(h.authRole.HasPermission(permissions.BookingUpdate)).Patch("/{id}", h.Update)
	})
}

// GetMyBookings lists the caller's bookings, newest first.
// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} response.Base{data=dto.GetBookingsResponse}
// @Security BearerAuth
// @Router /v1/bookings/mybookings [get]
func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	username, _ := r.Context().Value(constant.ContextKeyUsername).(string)

	var params gDto.QueryParams
	params.FromRequest(r, true)

	if params.SortBy == "" {
		params.SortBy = constant.DefaultValueSortBy
		params.SortDir = constant.DefaultValueSortDir
	}

	res, err := h.service.GetAll(r.Context(), params, service.FilterByUsername(username))
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAll lists every booking in the ledger.
// @Summary List all bookings
// @Tags bookings
// @Produce json
// @Param page query int false "page number"
// @Param limit query int false "page size"
// @Success 200 {object} response.Base{data=dto.GetBookingsResponse}
// @Failure 403 {object} response.Base
// @Security BearerAuth
// @Router /v1/bookings [get]
func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	var params gDto.QueryParams
	params.FromRequest(r, true)

	if params.SortBy == "" {
		params.SortBy = constant.DefaultValueSortBy
		params.SortDir = constant.DefaultValueSortDir
	}

	res, err := h.service.GetAll(r.Context(), params, gDto.FilterGroup{})
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns one booking. Customers can only read their own entries;
// administrators can read any.
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "booking id"
// @Success 200 {object} response.Base{data=dto.BookingResponse}
// @Failure 404 {object} response.Base
// @Security BearerAuth
// @Router /v1/bookings/{id} [get]
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	res, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.WithError(w, err)

		return
	}

	username, _ := r.Context().Value(constant.ContextKeyUsername).(string)
	role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

	if role != constant.RoleAdmin && res.Username != username {
		response.WithError(w, failure.NotFound("booking"))

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Update applies an administrative edit to a booking.
// @Summary Update a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "booking id"
// @Param request body dto.UpdateBookingRequest true "fields to change"
// @Success 200 {object} response.Base{data=dto.BookingResponse}
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Security BearerAuth
// @Router /v1/bookings/{id} [patch]
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
