package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"buslink/config"
	"buslink/infras/otel"
	"buslink/internal/domains/booking/model"
	"buslink/internal/domains/booking/model/dto"
	"buslink/internal/domains/booking/repository"
	routeModel "buslink/internal/domains/route/model"
	routeRepository "buslink/internal/domains/route/repository"
	"buslink/shared"
	"buslink/shared/cache"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"
	"buslink/shared/timezone"
	"buslink/shared/validator"

	"github.com/rs/zerolog/log"
)

const cachePrefix = "bookings"

type Booking interface {
	Append(ctx context.Context, req dto.AppendBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repository      repository.Booking
	routeRepository routeRepository.Route
	config          *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repository repository.Booking, routeRepository routeRepository.Route, config *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repository:      repository,
		routeRepository: routeRepository,
		config:          config,
		cache:           cache,
		otel:            otel,
	}
}

// Append writes one booking to the ledger. The ledger assigns the id and
// booking timestamp; status and payment status default to confirmed and paid
// when the request leaves them blank.
func (s *serviceImpl) Append(ctx context.Context, req dto.AppendBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "booking.Append")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	booking := req.ToModel()

	if err = s.repository.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("[BookingService] failed to insert booking")

		return res, fmt.Errorf("inserting booking: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix)
	}()

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cachePrefix, params, filter)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	bookings, err := s.repository.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("[BookingService] failed to list bookings")

		return res, fmt.Errorf("listing bookings: %w", err)
	}

	total, err := s.repository.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("[BookingService] failed to count bookings")

		return res, fmt.Errorf("counting bookings: %w", err)
	}

	res.FromModels(bookings)
	res.Page = params.Page
	res.Limit = params.Limit
	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, params.Limit)

	if err = s.cache.Save(ctx, cacheKey, res, s.config.Cache.TTL); err != nil {
		log.Warn().Err(err).Msg("[BookingService] failed to cache bookings")
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("[BookingService] failed to get booking")

		return res, fmt.Errorf("getting booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound(model.EntityName)
	}

	res.FromModel(booking)

	return res, nil
}

// Update applies an administrative edit. Reassigning the booking to a route
// rewrites the bus name and endpoints from the catalog and reprices the
// booking at the route's current fare. A route id that no longer resolves
// leaves the stored route fields untouched while the rest of the edit
// proceeds.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "booking.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	booking, err := s.repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("[BookingService] failed to get booking")

		return res, fmt.Errorf("getting booking: %w", err)
	}

	if booking.ID == "" {
		return res, failure.NotFound(model.EntityName)
	}

	if req.Passengers > 0 {
		booking.Passengers = req.Passengers
	}

	if req.TravelDate != "" {
		travelDate, parseErr := timezone.Parse(constant.DateOnlyFormat, req.TravelDate)
		if parseErr != nil {
			return res, failure.BadRequestFromString("invalid travel date")
		}

		booking.TravelDate = travelDate
	}

	if req.RouteID != "" {
		route, routeErr := s.routeRepository.Get(ctx, shared.FilterByID(req.RouteID, routeModel.FieldID, routeModel.TableName))
		if routeErr != nil {
			log.Error().Err(routeErr).Str("route_id", req.RouteID).Msg("[BookingService] failed to get route")

			return res, fmt.Errorf("getting route: %w", routeErr)
		}

		if route.ID != "" {
			booking.BusName = route.Name
			booking.Source = route.Source
			booking.Destination = route.Destination
			booking.TotalPrice = route.Price * float64(booking.Passengers)
		} else {
			log.Warn().Str("id", id).Str("route_id", req.RouteID).Msg("[BookingService] route not found, keeping stored route fields")
		}
	}

	if req.Status != "" {
		booking.Status = req.Status
	}

	if req.PaymentStatus != "" {
		booking.PaymentStatus = req.PaymentStatus
	}

	if req.AdminNotes != "" {
		booking.AdminNotes = req.AdminNotes
	}

	fields := map[string]any{
		model.FieldBusName:       booking.BusName,
		model.FieldSource:        booking.Source,
		model.FieldDestination:   booking.Destination,
		model.FieldTravelDate:    booking.TravelDate,
		model.FieldPassengers:    booking.Passengers,
		model.FieldTotalPrice:    booking.TotalPrice,
		model.FieldStatus:        booking.Status,
		model.FieldPaymentStatus: booking.PaymentStatus,
		model.FieldAdminNotes:    booking.AdminNotes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if err = s.repository.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("[BookingService] failed to update booking")

		return res, fmt.Errorf("updating booking: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cachePrefix)
	}()

	res.FromModel(booking)

	return res, nil
}

func FilterByUsername(username string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Value:    username,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
