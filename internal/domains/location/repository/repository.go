package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"carrental/infras/otel"
	"carrental/infras/postgres"
	"carrental/internal/domains/location/model"
	gDto "carrental/shared/dto"
	gRepo "carrental/shared/repository"
	"context"
)

type Location interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Location, bool, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Location]
}

func New(db *postgres.Connection, otel otel.Otel) Location {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Location](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
