package route

import (
	"net/http"

	"buslink/internal/domains/route/model/dto"
	"buslink/internal/domains/route/service"
	"buslink/permissions"
	"buslink/shared/constant"
	"buslink/shared/validator"
	"buslink/transport/http/middleware"
	"buslink/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type RouteHandler struct {
	service  service.Route
	authRole *middleware.AuthRole
}

func ProvideRouteHandler(service service.Route, authRole *middleware.AuthRole) RouteHandler {
	return RouteHandler{service: service, authRole: authRole}
}

func (h *RouteHandler) Router(r chi.Router) {
	r.Route("/routes", func(r chi.Router) {
		r.Get("/", h.Search)
		r.Get("/{id}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(h.authRole.Auth)
			r.With(h.authRole.HasPermission(permissions.RouteWrite)).Post("/", h.Save)
			r.With(h.authRole.HasPermission(permissions.RouteWrite)).Delete("/{id}", h.Delete)
		})
	})
}

// Search lists active routes matching the optional source and destination.
// @Summary Search routes
// @Tags routes
// @Produce json
// @Param source query string false "origin city"
// @Param destination query string false "destination city"
// @Param date query string false "travel date (accepted, not filtered on)"
// @Success 200 {object} response.Base{data=dto.GetRoutesResponse}
// @Router /v1/routes [get]
func (h *RouteHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := dto.SearchRoutesRequest{
		Source:      query.Get("source"),
		Destination: query.Get("destination"),
		Date:        query.Get("date"),
	}

	res, err := h.service.Search(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get returns one route by id.
// @Summary Get a route
// @Tags routes
// @Produce json
// @Param id path string true "route id"
// @Success 200 {object} response.Base{data=dto.RouteResponse}
// @Failure 404 {object} response.Base
// @Router /v1/routes/{id} [get]
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	res, err := h.service.Get(r.Context(), id)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Save upserts a route.
// @Summary Create or update a route
// @Tags routes
// @Accept json
// @Produce json
// @Param request body dto.SaveRouteRequest true "route payload"
// @Success 200 {object} response.Base{data=dto.RouteResponse}
// @Failure 400 {object} response.Base
// @Failure 403 {object} response.Base
// @Security BearerAuth
// @Router /v1/routes [post]
func (h *RouteHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveRouteRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		response.WithError(w, err)

		return
	}

	res, err := h.service.Save(r.Context(), req)
	if err != nil {
		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Delete removes a route from the catalog. Bookings made from it keep their
// copied fields.
// @Summary Delete a route
// @Tags routes
// @Produce json
// @Param id path string true "route id"
// @Success 200 {object} response.Base
// @Failure 403 {object} response.Base
// @Failure 404 {object} response.Base
// @Security BearerAuth
// @Router /v1/routes/{id} [delete]
func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, constant.RequestParamID)

	if err := h.service.Delete(r.Context(), id); err != nil {
		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "route deleted")
}
