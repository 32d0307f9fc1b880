package auth

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"wordrush/domain"
)

// --- AuthService ---

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

// --- UserRepo ---

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) CreateUser(ctx context.Context, username string, passwordHash string) (string, error) {
	args := m.Called(ctx, username, passwordHash)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepo) GetUserById(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

// --- PasswordHasher ---

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Compare(hash, password string) (bool, error) {
	args := m.Called(hash, password)
	return args.Bool(0), args.Error(1)
}

// --- TokenManager ---

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(id string, now time.Time) (string, error) {
	args := m.Called(id, now)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}
