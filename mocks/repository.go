package mocks

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"
	"github.com/yeremiapane/restaurant-api/repositories"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// Repository is a testify mock of repositories.Repository. Scopes are
// functions, match them with mock.Anything.
type Repository[T any] struct {
	mock.Mock
}

func NewRepository[T any](t testingT) *Repository[T] {
	m := &Repository[T]{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	entities, _ := args.Get(0).([]T)
	return entities, args.Error(1)
}

func (m *Repository[T]) Find(ctx context.Context, where repositories.Scope, includes ...string) ([]T, error) {
	args := m.Called(ctx, where, includes)
	entities, _ := args.Get(0).([]T)
	return entities, args.Error(1)
}

func (m *Repository[T]) FirstOrDefault(ctx context.Context, where repositories.Scope, includes ...string) (mo.Option[T], error) {
	args := m.Called(ctx, where, includes)
	entity, _ := args.Get(0).(mo.Option[T])
	return entity, args.Error(1)
}

func (m *Repository[T]) Any(ctx context.Context, where repositories.Scope) (bool, error) {
	args := m.Called(ctx, where)
	return args.Bool(0), args.Error(1)
}

func (m *Repository[T]) Insert(ctx context.Context, entity *T) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *Repository[T]) InsertMany(ctx context.Context, entities []T) (bool, error) {
	args := m.Called(ctx, entities)
	return args.Bool(0), args.Error(1)
}

func (m *Repository[T]) Update(ctx context.Context, entity *T) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}

func (m *Repository[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	args := m.Called(ctx, entity)
	return args.Bool(0), args.Error(1)
}
