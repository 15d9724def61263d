package repositories

import (
	"context"

	"github.com/samber/mo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope is a query predicate applied through gorm's Scopes.
type Scope = func(*gorm.DB) *gorm.DB

// Repository is the generic data access contract shared by every entity.
// Boolean results report whether at least one row was affected.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	Find(ctx context.Context, where Scope, includes ...string) ([]T, error)
	FirstOrDefault(ctx context.Context, where Scope, includes ...string) (mo.Option[T], error)
	Any(ctx context.Context, where Scope) (bool, error)
	Insert(ctx context.Context, entity *T) (bool, error)
	InsertMany(ctx context.Context, entities []T) (bool, error)
	Update(ctx context.Context, entity *T) (bool, error)
	Delete(ctx context.Context, entity *T) (bool, error)
}

type GormRepository[T any] struct {
	conn func() *gorm.DB
}

// NewRepository builds a repository whose queries run on whatever conn
// returns at call time, so an open transaction is picked up automatically.
func NewRepository[T any](conn func() *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{conn: conn}
}

func (r *GormRepository[T]) db(ctx context.Context) *gorm.DB {
	return r.conn().WithContext(ctx)
}

func (r *GormRepository[T]) query(ctx context.Context, where Scope, includes ...string) *gorm.DB {
	q := r.db(ctx)
	if where != nil {
		q = q.Scopes(where)
	}
	for _, include := range includes {
		q = q.Preload(include)
	}
	return q
}

func (r *GormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *GormRepository[T]) Find(ctx context.Context, where Scope, includes ...string) ([]T, error) {
	var entities []T
	if err := r.query(ctx, where, includes...).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *GormRepository[T]) FirstOrDefault(ctx context.Context, where Scope, includes ...string) (mo.Option[T], error) {
	var entity T
	result := r.query(ctx, where, includes...).Limit(1).Find(&entity)
	if result.Error != nil {
		return mo.None[T](), result.Error
	}
	if result.RowsAffected == 0 {
		return mo.None[T](), nil
	}
	return mo.Some(entity), nil
}

func (r *GormRepository[T]) Any(ctx context.Context, where Scope) (bool, error) {
	var count int64
	if err := r.query(ctx, where).Model(new(T)).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert writes the row only; associations are never upserted.
func (r *GormRepository[T]) Insert(ctx context.Context, entity *T) (bool, error) {
	result := r.db(ctx).Omit(clause.Associations).Create(entity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// InsertMany writes all entities in one statement. Generated ids are
// stamped back into the slice.
func (r *GormRepository[T]) InsertMany(ctx context.Context, entities []T) (bool, error) {
	if len(entities) == 0 {
		return false, nil
	}
	result := r.db(ctx).Omit(clause.Associations).Create(&entities)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update overwrites every column of the row matched by primary key. It
// never inserts.
func (r *GormRepository[T]) Update(ctx context.Context, entity *T) (bool, error) {
	result := r.db(ctx).Model(entity).Select("*").Omit(clause.Associations).Updates(entity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *GormRepository[T]) Delete(ctx context.Context, entity *T) (bool, error) {
	result := r.db(ctx).Delete(entity)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
