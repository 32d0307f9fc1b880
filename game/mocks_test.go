package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wordrush/domain"
)

// --- words.Validator ---

type acceptAllValidator struct{}

func (acceptAllValidator) Valid(word string, length int) bool {
	return len(word) == length
}

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) Valid(word string, length int) bool {
	args := m.Called(word, length)
	return args.Bool(0)
}

// --- ResultStore ---

type MockResultStore struct {
	mock.Mock
}

func (m *MockResultStore) UpdateRoundStats(ctx context.Context, userId string, ratingDelta, scoreAdd int, won bool) error {
	args := m.Called(ctx, userId, ratingDelta, scoreAdd, won)
	return args.Error(0)
}

func (m *MockResultStore) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- UserGetter ---

type MockUserGetter struct {
	mock.Mock
}

func (m *MockUserGetter) GetUserById(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

// --- TokenVerifier ---

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

// --- NetworkSession ---

type MockNetworkSession struct {
	mock.Mock
}

func (m *MockNetworkSession) Close(errCode string) {
	m.Called(errCode)
}

func (m *MockNetworkSession) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockNetworkSession) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockNetworkSession) Ping() error {
	args := m.Called()
	return args.Error(0)
}
