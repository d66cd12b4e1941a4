package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/airportadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context, page, pageSize int) ([]domain.ApiUser, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApiUser), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.ApiUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApiUser), args.Error(1)
}

func (m *MockUserRepository) ListByFilter(ctx context.Context, page, pageSize int, filter domain.ApiUserFilter) ([]domain.ApiUser, error) {
	args := m.Called(ctx, page, pageSize, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApiUser), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context, filter domain.ApiUserFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, entity *domain.ApiUser) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockUserRepository) Replace(ctx context.Context, entity *domain.ApiUser) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.ApiUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApiUser), args.Error(1)
}

func TestAuthService_Register_DefaultsRole(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewService(mockUsers, "secret", time.Hour)

	ctx := context.Background()

	mockUsers.On("Create", ctx, mock.MatchedBy(func(u *domain.ApiUser) bool {
		return u.Username == "ana" && u.Role == domain.RoleUser
	})).Return(nil).Once()

	user, err := service.Register(ctx, "ana", "pass123", "")

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")))
	mockUsers.AssertExpectations(t)
}

func TestAuthService_Register_RequiresUsername(t *testing.T) {
	service := NewService(&MockUserRepository{}, "secret", time.Hour)

	_, err := service.Register(context.Background(), "  ", "pass123", "")

	assert.Error(t, err)
}

func TestAuthService_Register_RejectsUnknownRole(t *testing.T) {
	service := NewService(&MockUserRepository{}, "secret", time.Hour)

	_, err := service.Register(context.Background(), "ana", "pass123", "superuser")

	assert.Error(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewService(mockUsers, "secret", time.Hour)

	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockUsers.On("GetByUsername", ctx, "ana").Return(&domain.ApiUser{
		ID: 1, Username: "ana", PasswordHash: string(hash), Role: domain.RoleAdmin,
	}, nil).Once()

	token, err := service.Login(ctx, "ana", "pass123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "ana", claims.Username)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewService(mockUsers, "secret", time.Hour)

	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)

	mockUsers.On("GetByUsername", ctx, "ana").Return(&domain.ApiUser{
		ID: 1, Username: "ana", PasswordHash: string(hash), Role: domain.RoleUser,
	}, nil).Once()

	_, err := service.Login(ctx, "ana", "nope")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	mockUsers := &MockUserRepository{}
	service := NewService(mockUsers, "secret", time.Hour)

	ctx := context.Background()

	mockUsers.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound).Once()

	_, err := service.Login(ctx, "ghost", "pass123")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_VerifyToken_WrongSecret(t *testing.T) {
	mockUsers := &MockUserRepository{}
	issuer := NewService(mockUsers, "secret-a", time.Hour)
	verifier := NewService(mockUsers, "secret-b", time.Hour)

	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.MinCost)
	mockUsers.On("GetByUsername", ctx, "ana").Return(&domain.ApiUser{
		ID: 1, Username: "ana", PasswordHash: string(hash), Role: domain.RoleUser,
	}, nil).Once()

	token, err := issuer.Login(ctx, "ana", "pass123")
	assert.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)
}
