package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/gin-gonic/gin"
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

func TestAuditHandler_List(t *testing.T) {
	mockRepo := &MockAuditRepository{}
	handler := NewAuditHandler(mockRepo)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/audit?limit=2", nil)

	entries := []domain.AuditEntry{
		{ID: 2, Entity: "airline", Action: "created", EntityID: 7},
		{ID: 1, Entity: "pilot", Action: "deleted", EntityID: 3},
	}
	mockRepo.On("ListRecent", mock.Anything, 2).Return(entries, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []domain.AuditEntry `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, "airline", resp.Items[0].Entity)
	mockRepo.AssertExpectations(t)
}

func TestAuditHandler_List_DefaultLimit(t *testing.T) {
	mockRepo := &MockAuditRepository{}
	handler := NewAuditHandler(mockRepo)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/audit", nil)

	mockRepo.On("ListRecent", mock.Anything, defaultAuditLimit).
		Return([]domain.AuditEntry{}, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestAuditHandler_List_RejectsBadLimit(t *testing.T) {
	mockRepo := &MockAuditRepository{}
	handler := NewAuditHandler(mockRepo)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/audit?limit=0", nil)

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepo.AssertNotCalled(t, "ListRecent")
}
