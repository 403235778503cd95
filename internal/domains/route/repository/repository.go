package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"buslink/infras/otel"
	"buslink/infras/postgres"
	"buslink/internal/domains/route/model"
	gDto "buslink/shared/dto"
	gRepo "buslink/shared/repository"
)

type Route interface {
	Insert(ctx context.Context, model model.Route) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Route, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Route, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Route]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Route {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Route](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
