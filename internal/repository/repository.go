package repository

import "context"

// Repository is the persistence gateway for one entity type. T is the entity,
// F its filter struct. Implementations perform one store round-trip per call.
type Repository[T any, F any] interface {
	List(ctx context.Context, page, pageSize int) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	ListByFilter(ctx context.Context, page, pageSize int, filter F) ([]T, error)
	Count(ctx context.Context, filter F) (int64, error)
	Create(ctx context.Context, entity *T) error
	Replace(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}
