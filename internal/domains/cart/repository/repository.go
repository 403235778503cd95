package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"buslink/infras/otel"
	"buslink/infras/postgres"
	"buslink/internal/domains/cart/model"
	gDto "buslink/shared/dto"
	gRepo "buslink/shared/repository"
)

type Cart interface {
	Insert(ctx context.Context, model model.CartItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CartItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CartItem, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CartItem]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Cart {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CartItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
