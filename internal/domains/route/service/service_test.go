package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"buslink/config"
	"buslink/infras/otel/mocks"
	routeMocks "buslink/internal/domains/route/mocks"
	"buslink/internal/domains/route/model"
	"buslink/internal/domains/route/model/dto"
	"buslink/internal/domains/route/service"
	cacheMocks "buslink/shared/cache/mocks"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	"buslink/shared/failure"
)

const testRouteID = "7b0c1c6e-32a1-45d7-9c5e-9a1f27d7a001"

func adminContext() context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
}

func newService(t *testing.T) (service.Route, *routeMocks.MockRoute, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := routeMocks.NewMockRoute(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func TestRouteService_Search(t *testing.T) {
	t.Run("filters on active plus case-insensitive endpoints", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Route, error) {
				where, args := filter.GetWhereClause()

				assert.Contains(t, where, "routes.active = :active")
				assert.Contains(t, where, "LOWER(routes.source) = LOWER(:source)")
				assert.Contains(t, where, "LOWER(routes.destination) = LOWER(:destination)")
				assert.Equal(t, "Dublin", args["source"])
				assert.Equal(t, "Galway", args["destination"])

				return []model.Route{{ID: testRouteID, Name: "CityLink Express", Active: true}}, nil
			})

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Search(context.Background(), dto.SearchRoutesRequest{
			Source:      "Dublin",
			Destination: "Galway",
			Date:        "2026-09-10",
		})

		require.NoError(t, err)
		require.Len(t, res.Routes, 1)
		assert.Equal(t, "CityLink Express", res.Routes[0].Name)
	})

	t.Run("no filters lists all active routes", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Route, error) {
				where, _ := filter.GetWhereClause()

				assert.Contains(t, where, "routes.active = :active")
				assert.NotContains(t, where, "source")
				assert.NotContains(t, where, "destination")

				return []model.Route{}, nil
			})

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Search(context.Background(), dto.SearchRoutesRequest{})

		require.NoError(t, err)
		assert.Empty(t, res.Routes)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.Search(context.Background(), dto.SearchRoutesRequest{})

		require.NoError(t, err)
	})
}

func TestRouteService_Save(t *testing.T) {
	startDate := "2026-01-01"
	endDate := "2026-12-31"

	baseReq := dto.SaveRouteRequest{
		Name:          "CityLink Express",
		Source:        "Dublin",
		Destination:   "Galway",
		DepartureTime: "08:00",
		ArrivalTime:   "10:30",
		Seats:         45,
		Price:         25.50,
		Category:      model.CategoryExpress,
		StartDate:     startDate,
		EndDate:       endDate,
	}

	t.Run("blank id inserts under a fresh identifier", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, route model.Route) error {
				assert.NotEmpty(t, route.ID)
				assert.Equal(t, model.AllOperatingDays, route.OperatingDays)
				assert.True(t, route.Active)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Save(adminContext(), baseReq)

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("existing id updates in place", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		req := baseReq
		req.ID = testRouteID

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "CityLink Express", fields[model.FieldName])
				assert.InDelta(t, 25.50, fields[model.FieldPrice].(float64), 0.001)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Save(adminContext(), req)

		require.NoError(t, err)
		assert.Equal(t, testRouteID, res.ID)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("unknown id inserts with the given identifier", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		req := baseReq
		req.ID = testRouteID

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, route model.Route) error {
				assert.Equal(t, testRouteID, route.ID)

				return nil
			})

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		_, err := svc.Save(adminContext(), req)

		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := baseReq
		req.StartDate = endDate
		req.EndDate = startDate

		_, err := svc.Save(adminContext(), req)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("unparseable departure time is rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		req := baseReq
		req.DepartureTime = "8 o'clock"

		_, err := svc.Save(adminContext(), req)

		require.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestRouteService_Get(t *testing.T) {
	t.Run("not found when no row matches", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Route{}, nil)

		_, err := svc.Get(context.Background(), testRouteID)

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("found routes are cached", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Route{ID: testRouteID, Name: "CityLink Express"}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
				assert.True(t, strings.HasPrefix(key, "routes:"))

				return nil
			})

		res, err := svc.Get(context.Background(), testRouteID)

		require.NoError(t, err)
		assert.Equal(t, testRouteID, res.ID)
	})
}

func TestRouteService_Delete(t *testing.T) {
	t.Run("deletes an existing route", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		require.NoError(t, svc.Delete(adminContext(), testRouteID))

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("missing route yields not found", func(t *testing.T) {
		svc, mockRepo, _ := newService(t)

		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Delete(adminContext(), testRouteID)

		require.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
