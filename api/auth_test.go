package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/Domenick1991/airportadm/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, username, password, role string) (*domain.ApiUser, error) {
	args := m.Called(ctx, username, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApiUser), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthUseCase) VerifyToken(token string) (*auth.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"username":"alice","password":"secret","role":"admin"}`)
	c.Request = httptest.NewRequest("POST", "/auth/register", body)
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Register", mock.Anything, "alice", "secret", "admin").
		Return(&domain.ApiUser{ID: 1, Username: "alice", Role: domain.RoleAdmin}, nil).Once()

	handler.register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var user domain.ApiUser
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "alice", user.Username)
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"username":"alice","password":"secret"}`)
	c.Request = httptest.NewRequest("POST", "/auth/register", body)
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Register", mock.Anything, "alice", "secret", "").
		Return(nil, domain.ErrAlreadyExists).Once()

	handler.register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "username is already taken")
}

func TestAuthHandler_Login(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"username":"alice","password":"secret"}`)
	c.Request = httptest.NewRequest("POST", "/auth/login", body)
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", mock.Anything, "alice", "secret").Return("signed-token", nil).Once()

	handler.login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp["token"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	mockService := &MockAuthUseCase{}
	handler := NewAuthHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body := bytes.NewBufferString(`{"username":"alice","password":"wrong"}`)
	c.Request = httptest.NewRequest("POST", "/auth/login", body)
	c.Request.Header.Set("Content-Type", "application/json")

	mockService.On("Login", mock.Anything, "alice", "wrong").
		Return("", domain.ErrInvalidCredentials).Once()

	handler.login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
