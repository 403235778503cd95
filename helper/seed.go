package helper

import (
	"context"
	"fmt"

	"buslink/config"
	routeModel "buslink/internal/domains/route/model"
	routeRepository "buslink/internal/domains/route/repository"
	userModel "buslink/internal/domains/user/model"
	userRepository "buslink/internal/domains/user/repository"
	"buslink/shared/constant"
	gDto "buslink/shared/dto"
	gModel "buslink/shared/model"
	"buslink/shared/password"
	"buslink/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const seedUser = "system"

// Seeder provisions the demo catalog and the initial administrator when
// APP_SEED_DEMO is set. Both steps are idempotent: an existing admin or a
// non-empty catalog is left alone, so restarts never duplicate data.
type Seeder struct {
	config          *config.Config
	userRepository  userRepository.User
	routeRepository routeRepository.Route
}

func ProvideSeeder(cfg *config.Config, userRepo userRepository.User, routeRepo routeRepository.Route) *Seeder {
	return &Seeder{
		config:          cfg,
		userRepository:  userRepo,
		routeRepository: routeRepo,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	if !s.config.App.Seed.Demo {
		return nil
	}

	if err := s.seedAdmin(ctx); err != nil {
		return err
	}

	return s.seedRoutes(ctx)
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	seed := s.config.App.Seed

	username := seed.AdminUsername
	if username == "" {
		username = "admin"
	}

	exist, err := s.userRepository.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldUsername,
				Value:    username,
				Operator: gDto.FilterOperatorEq,
				Table:    userModel.TableName,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("checking admin user: %w", err)
	}

	if exist {
		log.Info().Str("username", username).Msg("Admin user already present, skipping")

		return nil
	}

	if seed.AdminPassword == "" {
		log.Warn().Msg("APP_SEED_ADMIN_PASSWORD not set, skipping admin seeding")

		return nil
	}

	hashed, err := password.Hash(seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := userModel.User{
		ID:       uuid.NewString(),
		Username: username,
		Email:    seed.AdminEmail,
		Password: hashed,
		Role:     constant.RoleAdmin,
		Active:   true,
		Metadata: metadata(),
	}

	if err := s.userRepository.Insert(ctx, admin); err != nil {
		return fmt.Errorf("inserting admin user: %w", err)
	}

	log.Info().Str("username", username).Msg("Admin user seeded")

	return nil
}

func (s *Seeder) seedRoutes(ctx context.Context) error {
	count, err := s.routeRepository.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		return fmt.Errorf("counting routes: %w", err)
	}

	if count > 0 {
		log.Info().Int("count", count).Msg("Route catalog not empty, skipping demo routes")

		return nil
	}

	for _, route := range demoRoutes() {
		if err := s.routeRepository.Insert(ctx, route); err != nil {
			return fmt.Errorf("inserting demo route %s: %w", route.Name, err)
		}
	}

	log.Info().Msg("Demo routes seeded")

	return nil
}

func demoRoutes() []routeModel.Route {
	specs := []struct {
		name          string
		source        string
		destination   string
		departureTime string
		arrivalTime   string
		seats         int
		price         float64
		category      string
	}{
		{"CityLink Express", "Dublin", "Galway", "08:00", "10:30", 45, 25.50, routeModel.CategoryExpress},
		{"Cork Commuter", "Dublin", "Cork", "07:30", "10:45", 50, 30.00, routeModel.CategoryPremium},
		{"Wexford Wanderer", "Dublin", "Wexford", "09:15", "11:45", 40, 18.75, routeModel.CategoryStandard},
		{"Galway Flyer", "Galway", "Dublin", "17:00", "19:30", 45, 25.50, routeModel.CategoryExpress},
	}

	startDate := timezone.Now()
	endDate := startDate.AddDate(1, 0, 0)

	routes := make([]routeModel.Route, len(specs))
	for i, spec := range specs {
		routes[i] = routeModel.Route{
			ID:            uuid.NewString(),
			Name:          spec.name,
			Source:        spec.source,
			Destination:   spec.destination,
			DepartureTime: spec.departureTime,
			ArrivalTime:   spec.arrivalTime,
			Seats:         spec.seats,
			Price:         spec.price,
			Category:      spec.category,
			Active:        true,
			StartDate:     startDate,
			EndDate:       endDate,
			OperatingDays: routeModel.AllOperatingDays,
			Metadata:      metadata(),
		}
	}

	return routes
}

func metadata() gModel.Metadata {
	return gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  seedUser,
		ModifiedBy: seedUser,
	}
}
