package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func TestRecorder_Record(t *testing.T) {
	entries := &MockAuditRepository{}
	recorder := NewRecorder(entries)

	occurred := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	event := kafka.ChangeEvent{
		Entity:     "airline",
		Action:     "create",
		EntityID:   7,
		Payload:    json.RawMessage(`{"id":7,"name":"Air Serbia"}`),
		OccurredAt: occurred,
	}

	entries.On("Insert", mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Entity == "airline" && e.Action == "create" && e.EntityID == 7 && e.OccurredAt.Equal(occurred)
	})).Return(nil).Once()

	assert.NoError(t, recorder.Record(context.Background(), event))
	entries.AssertExpectations(t)
}

func TestRecorder_Record_FillsMissingTimestamp(t *testing.T) {
	entries := &MockAuditRepository{}
	recorder := NewRecorder(entries)

	entries.On("Insert", mock.Anything, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return !e.OccurredAt.IsZero()
	})).Return(nil).Once()

	event := kafka.ChangeEvent{Entity: "pilot", Action: "delete", EntityID: 3}
	assert.NoError(t, recorder.Record(context.Background(), event))
	entries.AssertExpectations(t)
}
