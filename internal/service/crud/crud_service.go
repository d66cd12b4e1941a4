package crud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/airportadm/internal/kafka"
	"github.com/Domenick1991/airportadm/internal/repository"
	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/rs/zerolog/log"
)

// ErrBadPatch marks a malformed or inapplicable patch document so the transport
// layer can answer 400 instead of 500.
var ErrBadPatch = errors.New("invalid patch document")

// UseCase forwards the gateway operations and adds JSON Patch application.
type UseCase[T any, F any] interface {
	List(ctx context.Context, page, pageSize int) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	ListByFilter(ctx context.Context, page, pageSize int, filter F) ([]T, error)
	Count(ctx context.Context, filter F) (int64, error)
	Create(ctx context.Context, entity *T) error
	Replace(ctx context.Context, entity *T) error
	Patch(ctx context.Context, id int64, patchDoc []byte) (*T, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

type ListCache[T any] interface {
	GetList(ctx context.Context, page, pageSize int) ([]T, error)
	SetList(ctx context.Context, page, pageSize int, items []T) error
	Invalidate(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// Service is the pass-through application service over one entity's gateway.
// The optional cache covers unfiltered pages; the optional producer emits a
// change event after every successful mutation.
type Service[T any, F any] struct {
	repo     repository.Repository[T, F]
	cache    ListCache[T]
	producer Producer
	entity   string
	topic    string
	id       func(*T) int64
	setID    func(*T, int64)
	preserve func(dst, src *T)
}

type Option[T any, F any] func(*Service[T, F])

func WithCache[T any, F any](cache ListCache[T]) Option[T, F] {
	return func(s *Service[T, F]) {
		s.cache = cache
	}
}

func WithProducer[T any, F any](producer Producer, topic string) Option[T, F] {
	return func(s *Service[T, F]) {
		s.producer = producer
		s.topic = topic
	}
}

// WithPreserve copies fields invisible to JSON from the stored entity onto the
// patched one before it is persisted. Without it a patch round-trip would zero
// any field the entity hides from serialization.
func WithPreserve[T any, F any](preserve func(dst, src *T)) Option[T, F] {
	return func(s *Service[T, F]) {
		s.preserve = preserve
	}
}

func NewService[T any, F any](
	entity string,
	repo repository.Repository[T, F],
	id func(*T) int64,
	setID func(*T, int64),
	opts ...Option[T, F],
) *Service[T, F] {
	service := &Service[T, F]{
		repo:   repo,
		entity: entity,
		id:     id,
		setID:  setID,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *Service[T, F]) List(ctx context.Context, page, pageSize int) ([]T, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetList(ctx, page, pageSize); err == nil && cached != nil {
			return cached, nil
		}
	}

	items, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetList(ctx, page, pageSize, items)
	}
	return items, nil
}

func (s *Service[T, F]) GetByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service[T, F]) ListByFilter(ctx context.Context, page, pageSize int, filter F) ([]T, error) {
	return s.repo.ListByFilter(ctx, page, pageSize, filter)
}

func (s *Service[T, F]) Count(ctx context.Context, filter F) (int64, error) {
	return s.repo.Count(ctx, filter)
}

func (s *Service[T, F]) Create(ctx context.Context, entity *T) error {
	if err := s.repo.Create(ctx, entity); err != nil {
		return err
	}
	s.afterMutation(ctx, "created", entity)
	return nil
}

func (s *Service[T, F]) Replace(ctx context.Context, entity *T) error {
	if err := s.repo.Replace(ctx, entity); err != nil {
		return err
	}
	s.afterMutation(ctx, "replaced", entity)
	return nil
}

func (s *Service[T, F]) Patch(ctx context.Context, id int64, patchDoc []byte) (*T, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.DecodePatch(patchDoc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPatch, err)
	}
	original, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	modified, err := patch.Apply(original)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPatch, err)
	}

	var updated T
	if err := json.Unmarshal(modified, &updated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPatch, err)
	}
	// primary key is immutable
	s.setID(&updated, id)
	if s.preserve != nil {
		s.preserve(&updated, current)
	}

	if err := s.repo.Replace(ctx, &updated); err != nil {
		return nil, err
	}
	s.afterMutation(ctx, "patched", &updated)
	return &updated, nil
}

func (s *Service[T, F]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	s.publish(ctx, "deleted", id, nil)
	return nil
}

func (s *Service[T, F]) Exists(ctx context.Context, id int64) (bool, error) {
	return s.repo.Exists(ctx, id)
}

func (s *Service[T, F]) afterMutation(ctx context.Context, action string, entity *T) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
	s.publish(ctx, action, s.id(entity), entity)
}

func (s *Service[T, F]) publish(ctx context.Context, action string, id int64, payload any) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.ChangeEvent{
		Entity:     s.entity,
		Action:     action,
		EntityID:   id,
		OccurredAt: time.Now(),
	}
	if payload != nil {
		if data, err := json.Marshal(payload); err == nil {
			event.Payload = data
		}
	}
	key := fmt.Sprintf("%s-%d", s.entity, id)
	if err := s.producer.Publish(ctx, s.topic, key, event); err != nil {
		log.Warn().Err(err).Str("entity", s.entity).Str("action", action).Int64("id", id).
			Msg("failed to publish change event")
	}
}

var _ UseCase[struct{}, struct{}] = (*Service[struct{}, struct{}])(nil)
