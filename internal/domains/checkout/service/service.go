package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"buslink/config"
	"buslink/infras/otel"
	bookingDto "buslink/internal/domains/booking/model/dto"
	bookingService "buslink/internal/domains/booking/service"
	cartModel "buslink/internal/domains/cart/model"
	cartRepository "buslink/internal/domains/cart/repository"
	cartService "buslink/internal/domains/cart/service"
	"buslink/internal/domains/checkout/model/dto"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"
	"buslink/shared/timezone"

	"github.com/rs/zerolog/log"
)

const skipReasonInvalidDate = "unparseable travel date"

type Checkout interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
}

type serviceImpl struct {
	cartRepository cartRepository.Cart
	booking        bookingService.Booking
	config         *config.Config
	otel           otel.Otel
}

func New(cartRepository cartRepository.Cart, booking bookingService.Booking, config *config.Config, otel otel.Otel) Checkout {
	return &serviceImpl{
		cartRepository: cartRepository,
		booking:        booking,
		config:         config,
		otel:           otel,
	}
}

// Checkout converts the caller's cart into ledger bookings. Lines are
// processed independently: a line that cannot be converted is reported as
// skipped and the rest of the batch continues. The cart is cleared once the
// batch has run, whether or not every line produced a booking. The declared
// total and payment method are echoed back as recorded at the payment step.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, "checkout.Checkout")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)

	items, err := s.cartRepository.GetAll(ctx, gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc}, cartService.FilterByUsername(username))
	if err != nil {
		log.Error().Err(err).Str("username", username).Msg("[CheckoutService] failed to load cart")

		return res, fmt.Errorf("loading cart: %w", err)
	}

	if len(items) == 0 {
		return res, failure.BadRequestFromString("cart is empty")
	}

	res.Username = username
	res.Total = req.Total
	res.PaymentMethod = req.PaymentMethod
	res.Bookings = []bookingDto.BookingResponse{}

	for _, item := range items {
		travelDate, ok := s.resolveTravelDate(item.TravelDate)
		if !ok {
			log.Warn().Str("cart_item_id", item.ID).Str("travel_date", item.TravelDate).Msg("[CheckoutService] skipping cart item")

			res.Skipped = append(res.Skipped, skippedItem(item, skipReasonInvalidDate))

			continue
		}

		booking, appendErr := s.booking.Append(ctx, bookingDto.AppendBookingRequest{
			Username:    item.Username,
			BusName:     item.BusName,
			Source:      item.Source,
			Destination: item.Destination,
			TravelDate:  travelDate,
			Passengers:  item.Passengers,
			TotalPrice:  item.TotalPrice,
		})
		if appendErr != nil {
			log.Error().Err(appendErr).Str("cart_item_id", item.ID).Msg("[CheckoutService] failed to store booking")

			res.Skipped = append(res.Skipped, skippedItem(item, "failed to store booking"))

			continue
		}

		res.Bookings = append(res.Bookings, booking)
	}

	res.BookingCount = len(res.Bookings)

	if err = s.cartRepository.Delete(ctx, cartService.FilterByUsername(username)); err != nil {
		log.Error().Err(err).Str("username", username).Msg("[CheckoutService] failed to clear cart")

		return res, fmt.Errorf("clearing cart: %w", err)
	}

	return res, nil
}

// resolveTravelDate interprets the free-text travel date of a cart line. A
// blank date books for tomorrow; a non-blank date that does not parse marks
// the line as skippable.
func (s *serviceImpl) resolveTravelDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return timezone.Now().AddDate(0, 0, 1), true
	}

	travelDate, err := timezone.Parse(constant.DateOnlyFormat, trimmed)
	if err != nil {
		return time.Time{}, false
	}

	return travelDate, true
}

func skippedItem(item cartModel.CartItem, reason string) dto.SkippedItem {
	return dto.SkippedItem{
		CartItemID: item.ID,
		BusName:    item.BusName,
		TravelDate: item.TravelDate,
		Reason:     reason,
	}
}
