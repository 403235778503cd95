package service

import (
	"context"
	"fmt"

	"buslink/config"
	"buslink/infras/otel"
	"buslink/internal/domains/cart/model"
	"buslink/internal/domains/cart/model/dto"
	"buslink/internal/domains/cart/repository"
	routeModel "buslink/internal/domains/route/model"
	routeRepository "buslink/internal/domains/route/repository"
	"buslink/shared"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"
	gModel "buslink/shared/model"
	"buslink/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Cart interface {
	AddItem(ctx context.Context, req dto.AddCartItemRequest) (dto.CartItemResponse, error)
	List(ctx context.Context) (dto.GetCartResponse, error)
	RemoveItem(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type serviceImpl struct {
	repository      repository.Cart
	routeRepository routeRepository.Route
	config          *config.Config
	otel            otel.Otel
}

func New(repository repository.Cart, routeRepository routeRepository.Route, config *config.Config, otel otel.Otel) Cart {
	return &serviceImpl{
		repository:      repository,
		routeRepository: routeRepository,
		config:          config,
		otel:            otel,
	}
}

// AddItem snapshots the route into a cart line priced at the route fare times
// the passenger count. Travel dates in the past are rejected here, before
// anything reaches the ledger.
func (s *serviceImpl) AddItem(ctx context.Context, req dto.AddCartItemRequest) (res dto.CartItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "cart.AddItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	travelDate, err := timezone.Parse(constant.DateOnlyFormat, req.TravelDate)
	if err != nil {
		return res, failure.BadRequestFromString("invalid travel date")
	}

	today, err := timezone.Parse(constant.DateOnlyFormat, timezone.Now().Format(constant.DateOnlyFormat))
	if err != nil {
		return res, fmt.Errorf("resolving current date: %w", err)
	}

	if travelDate.Before(today) {
		return res, failure.BadRequestFromString("travel date cannot be in the past")
	}

	route, err := s.routeRepository.Get(ctx, shared.FilterByID(req.RouteID, routeModel.FieldID, routeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("route_id", req.RouteID).Msg("[CartService] failed to get route")

		return res, fmt.Errorf("getting route: %w", err)
	}

	if route.ID == "" {
		return res, failure.NotFound(routeModel.EntityName)
	}

	item := model.CartItem{
		ID:          uuid.NewString(),
		Username:    username,
		RouteID:     route.ID,
		BusName:     route.Name,
		Source:      route.Source,
		Destination: route.Destination,
		TravelDate:  travelDate.Format(constant.DateOnlyFormat),
		Passengers:  req.Passengers,
		TotalPrice:  route.Price * float64(req.Passengers),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}

	if err = s.repository.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("[CartService] failed to insert cart item")

		return res, fmt.Errorf("inserting cart item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res dto.GetCartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "cart.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	items, err := s.repository.GetAll(ctx, gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}, FilterByUsername(username))
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("[CartService] failed to list cart items")

		return res, fmt.Errorf("listing cart items: %w", err)
	}

	res.FromModels(items)

	return res, nil
}

// RemoveItem drops a single line from the caller's cart. Removing an id that
// is absent, or owned by someone else, is a no-op.
func (s *serviceImpl) RemoveItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "cart.RemoveItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	filter := FilterByUsername(username)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldID,
		Value:    id,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	if err = s.repository.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("id", id).Msg("[CartService] failed to remove cart item")

		return fmt.Errorf("removing cart item: %w", err)
	}

	return nil
}

func (s *serviceImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "cart.Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	if err = s.repository.Delete(ctx, FilterByUsername(username)); err != nil {
		log.Error().Err(err).Str("username", username).Msg("[CartService] failed to clear cart")

		return fmt.Errorf("clearing cart: %w", err)
	}

	return nil
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
