package service

import (
	"context"
	"fmt"
	"strings"

	"buslink/config"
	"buslink/infras/otel"
	"buslink/internal/domains/route/model"
	"buslink/internal/domains/route/model/dto"
	"buslink/internal/domains/route/repository"
	"buslink/shared"
	"buslink/shared/cache"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"

	"github.com/rs/zerolog/log"
)

const cachePrefix = "routes"

type Route interface {
	Search(ctx context.Context, req dto.SearchRoutesRequest) (dto.GetRoutesResponse, error)
	Get(ctx context.Context, id string) (dto.RouteResponse, error)
	Save(ctx context.Context, req dto.SaveRouteRequest) (dto.RouteResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repository repository.Route
	config     *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repository repository.Route, config *config.Config, cache cache.RedisCache, otel otel.Otel) Route {
	return &serviceImpl{
		repository: repository,
		config:     config,
		cache:      cache,
		otel:       otel,
	}
}

// Search lists active routes, optionally narrowed by origin and destination.
// Matching on both is exact but case-insensitive. The travel date is accepted
// for the request surface and does not constrain the result set.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRoutesRequest) (res dto.GetRoutesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "route.Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := searchFilter(req)

	cacheKey := shared.BuildCacheKeyWithQuery(cachePrefix, gDto.QueryParams{}, filter)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	routes, err := s.repository.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDepartureTime, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("[RouteService] failed to search routes")

		return res, fmt.Errorf("searching routes: %w", err)
	}

	res.FromModels(routes)

	if err = s.cache.Save(ctx, cacheKey, res, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("[RouteService] failed to cache search result")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RouteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "route.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePrefix, id)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	route, err := s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("[RouteService] failed to get route")

		return res, fmt.Errorf("getting route: %w", err)
	}

	if route.ID == "" {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(route)

	if err = s.cache.Save(ctx, cacheKey, res, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("[RouteService] failed to cache route")
	}

	return res, nil
}

// Save upserts a route. A request without an id creates the route under a
// fresh identifier; a request with an id replaces the stored fields.
func (s *serviceImpl) Save(ctx context.Context, req dto.SaveRouteRequest) (res dto.RouteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "route.Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	route, err := req.ToModel(username)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if route.EndDate.Before(route.StartDate) {
		return res, failure.BadRequestFromString("end date must not precede start date")
	}

	exist := false
	if req.ID != "" {
		exist, err = s.repository.Exist(ctx, shared.FilterByID(req.ID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Str("id", req.ID).Msg("[RouteService] failed to check route existence")

			return res, fmt.Errorf("checking route existence: %w", err)
		}
	}

	if exist {
		fields := map[string]any{
			model.FieldName:          route.Name,
			model.FieldSource:        route.Source,
			model.FieldDestination:   route.Destination,
			model.FieldDepartureTime: route.DepartureTime,
			model.FieldArrivalTime:   route.ArrivalTime,
			model.FieldSeats:         route.Seats,
			model.FieldPrice:         route.Price,
			model.FieldCategory:      route.Category,
			model.FieldActive:        route.Active,
			model.FieldStartDate:     route.StartDate,
			model.FieldEndDate:       route.EndDate,
			model.FieldOperatingDays: route.OperatingDays,
			constant.FieldModifiedAt: route.ModifiedAt,
			constant.FieldModifiedBy: route.ModifiedBy,
		}

		if err = s.repository.Update(ctx, fields, shared.FilterByID(route.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("id", route.ID).Msg("[RouteService] failed to update route")

			return res, fmt.Errorf("updating route: %w", err)
		}
	} else {
		if err = s.repository.Insert(ctx, route); err != nil {
			log.Error().Err(err).Msg("[RouteService] failed to insert route")

			return res, fmt.Errorf("inserting route: %w", err)
		}
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix)
	}()

	res.FromModel(route)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "route.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repository.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("[RouteService] failed to check route existence")

		return fmt.Errorf("checking route existence: %w", err)
	}

	if !exist {
		return failure.NotFound(model.EntityName)
	}

	if err = s.repository.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("[RouteService] failed to delete route")

		return fmt.Errorf("deleting route: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix)
	}()

	return nil
}

func searchFilter(req dto.SearchRoutesRequest) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldActive,
			Value:    true,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if source := strings.TrimSpace(req.Source); source != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldSource,
			Value:    source,
			Operator: gDto.FilterOperatorIEq,
			Table:    model.TableName,
		})
	}

	if destination := strings.TrimSpace(req.Destination); destination != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldDestination,
			Value:    destination,
			Operator: gDto.FilterOperatorIEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}
