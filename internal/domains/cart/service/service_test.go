package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"buslink/config"
	"buslink/infras/otel/mocks"
	cartMocks "buslink/internal/domains/cart/mocks"
	cartModel "buslink/internal/domains/cart/model"
	"buslink/internal/domains/cart/model/dto"
	"buslink/internal/domains/cart/service"
	routeMocks "buslink/internal/domains/route/mocks"
	routeModel "buslink/internal/domains/route/model"
	"buslink/shared/constant"
	"buslink/shared/failure"
	"buslink/shared/timezone"
)

const (
	testUsername = "sarah"
	testRouteID  = "7b0c1c6e-32a1-45d7-9c5e-9a1f27d7a001"
)

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, testUsername)
}

func activeRoute() routeModel.Route {
	return routeModel.Route{
		ID:          testRouteID,
		Name:        "CityLink Express",
		Source:      "Dublin",
		Destination: "Galway",
		Seats:       45,
		Price:       25.50,
		Category:    routeModel.CategoryExpress,
		Active:      true,
	}
}

func TestCartService_AddItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)

	svc := service.New(mockCartRepo, mockRouteRepo, &config.Config{}, mocks.NewOtel())

	futureDate := timezone.Now().AddDate(0, 0, 7).Format(constant.DateOnlyFormat)
	pastDate := timezone.Now().AddDate(0, 0, -1).Format(constant.DateOnlyFormat)
	today := timezone.Now().Format(constant.DateOnlyFormat)

	tests := []struct {
		name      string
		req       dto.AddCartItemRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		wantTotal float64
	}{
		{
			name: "snapshots route and multiplies fare by passengers",
			req:  dto.AddCartItemRequest{RouteID: testRouteID, TravelDate: futureDate, Passengers: 2},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoute(), nil)

				mockCartRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item cartModel.CartItem) error {
						assert.NotEmpty(t, item.ID)
						assert.Equal(t, testUsername, item.Username)
						assert.Equal(t, "CityLink Express", item.BusName)
						assert.Equal(t, "Dublin", item.Source)
						assert.Equal(t, "Galway", item.Destination)
						assert.Equal(t, futureDate, item.TravelDate)
						assert.InDelta(t, 51.00, item.TotalPrice, 0.001)

						return nil
					})
			},
			wantTotal: 51.00,
		},
		{
			name: "travel on the current day is allowed",
			req:  dto.AddCartItemRequest{RouteID: testRouteID, TravelDate: today, Passengers: 1},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeRoute(), nil)

				mockCartRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantTotal: 25.50,
		},
		{
			name:      "past travel date is rejected",
			req:       dto.AddCartItemRequest{RouteID: testRouteID, TravelDate: pastDate, Passengers: 1},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name:      "unparseable travel date is rejected",
			req:       dto.AddCartItemRequest{RouteID: testRouteID, TravelDate: "not-a-date", Passengers: 1},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "unknown route is rejected",
			req:  dto.AddCartItemRequest{RouteID: testRouteID, TravelDate: futureDate, Passengers: 1},
			setupMock: func() {
				mockRouteRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(routeModel.Route{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.AddItem(testContext(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantTotal, res.TotalPrice, 0.001)
		})
	}
}

func TestCartService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)

	svc := service.New(mockCartRepo, mockRouteRepo, &config.Config{}, mocks.NewOtel())

	mockCartRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]cartModel.CartItem{
			{ID: "item-1", Username: testUsername, TotalPrice: 51.00},
			{ID: "item-2", Username: testUsername, TotalPrice: 18.75},
		}, nil)

	res, err := svc.List(testContext())

	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
	assert.InDelta(t, 69.75, res.Total, 0.001)
}

func TestCartService_ListEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)

	svc := service.New(mockCartRepo, mockRouteRepo, &config.Config{}, mocks.NewOtel())

	mockCartRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]cartModel.CartItem{}, nil)

	res, err := svc.List(testContext())

	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Zero(t, res.Total)
}

func TestCartService_RemoveItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)

	svc := service.New(mockCartRepo, mockRouteRepo, &config.Config{}, mocks.NewOtel())

	// removal does not check existence: deleting an absent line succeeds
	mockCartRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	require.NoError(t, svc.RemoveItem(testContext(), "item-1"))
	require.NoError(t, svc.RemoveItem(testContext(), "item-1"))
}

func TestCartService_Clear(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCartRepo := cartMocks.NewMockCart(ctrl)
	mockRouteRepo := routeMocks.NewMockRoute(ctrl)

	svc := service.New(mockCartRepo, mockRouteRepo, &config.Config{}, mocks.NewOtel())

	mockCartRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	require.NoError(t, svc.Clear(testContext()))

	mockCartRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(errors.New("connection lost"))

	require.Error(t, svc.Clear(testContext()))
}
