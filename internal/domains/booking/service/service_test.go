package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"buslink/config"
	"buslink/infras/otel/mocks"
	bookingMocks "buslink/internal/domains/booking/mocks"
	"buslink/internal/domains/booking/model"
	"buslink/internal/domains/booking/model/dto"
	"buslink/internal/domains/booking/service"
	routeMocks "buslink/internal/domains/route/mocks"
	routeModel "buslink/internal/domains/route/model"
	cacheMocks "buslink/shared/cache/mocks"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"
	"buslink/shared/timezone"
)

const (
	testBookingID = "2f8a9e44-6a71-4b3c-8a53-b54f7d1f9001"
	testRouteID   = "7b0c1c6e-32a1-45d7-9c5e-9a1f27d7a001"
)

func adminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *routeMocks.MockRoute, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, mockRouteRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockRouteRepo, mockCache
}

func storedBooking() model.Booking {
	return model.Booking{
		ID:            testBookingID,
		Username:      "sarah",
		BusName:       "CityLink Express",
		Source:        "Dublin",
		Destination:   "Galway",
		TravelDate:    timezone.Now().AddDate(0, 0, 7),
		BookingDate:   timezone.Now(),
		Passengers:    2,
		TotalPrice:    51.00,
		Status:        model.StatusConfirmed,
		PaymentStatus: model.PaymentStatusPaid,
	}
}

func TestBookingService_Append(t *testing.T) {
	t.Run("assigns id, timestamp and confirmed paid defaults", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.NotEmpty(t, booking.ID)
				assert.False(t, booking.BookingDate.IsZero())
				assert.Equal(t, model.StatusConfirmed, booking.Status)
				assert.Equal(t, model.PaymentStatusPaid, booking.PaymentStatus)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Append(context.Background(), dto.AppendBookingRequest{
			Username:    "sarah",
			BusName:     "CityLink Express",
			Source:      "Dublin",
			Destination: "Galway",
			TravelDate:  timezone.Now().AddDate(0, 0, 7),
			Passengers:  2,
			TotalPrice:  51.00,
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
		assert.Equal(t, model.PaymentStatusPaid, res.PaymentStatus)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("explicit status survives", func(t *testing.T) {
		svc, mockRepo, _, mockCache := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusPending, booking.Status)
				assert.Equal(t, model.PaymentStatusUnpaid, booking.PaymentStatus)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Append(context.Background(), dto.AppendBookingRequest{
			Username:      "sarah",
			BusName:       "CityLink Express",
			Source:        "Dublin",
			Destination:   "Galway",
			TravelDate:    timezone.Now().AddDate(0, 0, 7),
			Passengers:    1,
			TotalPrice:    25.50,
			Status:        model.StatusPending,
			PaymentStatus: model.PaymentStatusUnpaid,
		})

		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("invalid request is rejected before the ledger", func(t *testing.T) {
		svc, _, _, _ := newService(t)

		_, err := svc.Append(context.Background(), dto.AppendBookingRequest{
			Username: "sarah",
		})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	svc, mockRepo, _, mockCache := newService(t)

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: constant.DefaultValueSortBy, SortDir: constant.DefaultValueSortDir}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockRepo.EXPECT().
		GetAll(gomock.Any(), params, gomock.Any()).
		Return([]model.Booking{storedBooking()}, nil)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(25, nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.GetAll(adminContext(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 25, res.Total)
	assert.Equal(t, 3, res.TotalPage)
}

func TestBookingService_Get(t *testing.T) {
	t.Run("missing booking yields not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(adminContext(), testBookingID)

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Update(t *testing.T) {
	t.Run("route reassignment rewrites endpoints and reprices", func(t *testing.T) {
		svc, mockRepo, mockRouteRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		mockRouteRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(routeModel.Route{
				ID:          testRouteID,
				Name:        "Cork Commuter",
				Source:      "Dublin",
				Destination: "Cork",
				Price:       30.00,
			}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Cork Commuter", fields[model.FieldBusName])
				assert.Equal(t, "Cork", fields[model.FieldDestination])
				assert.InDelta(t, 90.00, fields[model.FieldTotalPrice].(float64), 0.001)
				assert.Equal(t, 3, fields[model.FieldPassengers])

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Update(adminContext(), testBookingID, dto.UpdateBookingRequest{
			RouteID:    testRouteID,
			Passengers: 3,
		})

		require.NoError(t, err)
		assert.Equal(t, "Cork Commuter", res.BusName)
		assert.InDelta(t, 90.00, res.TotalPrice, 0.001)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("vanished route keeps stored fields and the edit proceeds", func(t *testing.T) {
		svc, mockRepo, mockRouteRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		mockRouteRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(routeModel.Route{}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "CityLink Express", fields[model.FieldBusName])
				assert.Equal(t, "Galway", fields[model.FieldDestination])
				assert.InDelta(t, 51.00, fields[model.FieldTotalPrice].(float64), 0.001)
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Update(adminContext(), testBookingID, dto.UpdateBookingRequest{
			RouteID: testRouteID,
			Status:  model.StatusCancelled,
		})

		require.NoError(t, err)
		assert.Equal(t, "CityLink Express", res.BusName)
		assert.Equal(t, model.StatusCancelled, res.Status)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("invalid travel date is rejected", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(storedBooking(), nil)

		_, err := svc.Update(adminContext(), testBookingID, dto.UpdateBookingRequest{
			TravelDate: "someday",
		})

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("missing booking yields not found", func(t *testing.T) {
		svc, mockRepo, _, _ := newService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Update(adminContext(), testBookingID, dto.UpdateBookingRequest{})

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
