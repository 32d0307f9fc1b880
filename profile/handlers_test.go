package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordrush/domain"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUserById(ctx context.Context, id string) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockStore) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockStore) HistoryByUser(ctx context.Context, userId string, limit int) ([]domain.HistoryEntry, error) {
	args := m.Called(ctx, userId, limit)
	return args.Get(0).([]domain.HistoryEntry), args.Error(1)
}

func TestLeaderboardHandler(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	board := []domain.User{
		{Id: "u-1", Username: "alice", Rating: 1200, TotalGames: 10, TotalWins: 7, TotalScore: 400},
		{Id: "u-2", Username: "bob", Rating: 1000},
	}

	newServer := func(m *MockStore) *gin.Engine {
		server := gin.New()
		server.GET("/leaderboard", NewProfileHandler(m).LeaderboardHandler)
		return server
	}

	t.Run("default limit", func(t *testing.T) {
		store := &MockStore{}
		store.On("Leaderboard", mock.Anything, defaultLeaderboardLimit).Return(board, nil).Once()
		server := newServer(store)

		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		require.Equal(t, http.StatusOK, res.Code)
		var body struct {
			Leaderboard []map[string]any `json:"leaderboard"`
		}
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		require.Len(t, body.Leaderboard, 2)
		assert.Equal(t, "alice", body.Leaderboard[0]["username"])
		assert.EqualValues(t, 1200, body.Leaderboard[0]["rating"])
		assert.EqualValues(t, 7, body.Leaderboard[0]["total_wins"])
		store.AssertExpectations(t)
	})

	t.Run("explicit limit", func(t *testing.T) {
		store := &MockStore{}
		store.On("Leaderboard", mock.Anything, 5).Return(board[:1], nil).Once()
		server := newServer(store)

		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/leaderboard?limit=5", nil))

		assert.Equal(t, http.StatusOK, res.Code)
		store.AssertExpectations(t)
	})

	t.Run("absurd limit falls back to default", func(t *testing.T) {
		store := &MockStore{}
		store.On("Leaderboard", mock.Anything, defaultLeaderboardLimit).Return(board, nil).Once()
		server := newServer(store)

		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/leaderboard?limit=9999", nil))

		assert.Equal(t, http.StatusOK, res.Code)
		store.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &MockStore{}
		store.On("Leaderboard", mock.Anything, defaultLeaderboardLimit).
			Return([]domain.User(nil), domain.UnexpectedDatabaseError).Once()
		server := newServer(store)

		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

		assert.Equal(t, http.StatusInternalServerError, res.Code)
		assert.Equal(t, "unknown-error", res.Body.String())
	})
}

func TestProfileHandler(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	// The auth middleware normally sets "id"; the fake middleware here
	// stands in for it.
	newServer := func(m *MockStore, id string) *gin.Engine {
		server := gin.New()
		server.GET("/profile", func(ctx *gin.Context) {
			if id != "" {
				ctx.Set("id", id)
			}
		}, NewProfileHandler(m).ProfileHandler)
		return server
	}

	t.Run("happy path", func(t *testing.T) {
		store := &MockStore{}
		finishedAt := time.Now()
		store.On("GetUserById", mock.Anything, "u-1").
			Return(domain.User{Id: "u-1", Username: "alice", Rating: 1016, TotalGames: 1, TotalWins: 1, TotalScore: 18}, nil).Once()
		store.On("HistoryByUser", mock.Anything, "u-1", historyLimit).
			Return([]domain.HistoryEntry{{
				RoundId:         "round-1",
				RoomCode:        "AB12CD",
				UserId:          "u-1",
				Score:           18,
				Placement:       1,
				WordLength:      4,
				DurationMinutes: 2,
				Opponents:       1,
				RatingDelta:     16,
				RatingAfter:     1016,
				FinishedAt:      finishedAt,
			}}, nil).Once()
		server := newServer(store, "u-1")

		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/profile", nil))

		require.Equal(t, http.StatusOK, res.Code)
		var body struct {
			User    map[string]any   `json:"user"`
			History []map[string]any `json:"history"`
		}
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.Equal(t, "alice", body.User["username"])
		assert.EqualValues(t, 1016, body.User["rating"])
		require.Len(t, body.History, 1)
		assert.Equal(t, "AB12CD", body.History[0]["room_code"])
		assert.EqualValues(t, 16, body.History[0]["rating_delta"])
		assert.EqualValues(t, finishedAt.Unix(), body.History[0]["finished_at"])
		store.AssertExpectations(t)
	})

	t.Run("no id in context", func(t *testing.T) {
		server := newServer(&MockStore{}, "")
		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("account deleted since login", func(t *testing.T) {
		store := &MockStore{}
		store.On("GetUserById", mock.Anything, "u-gone").
			Return(domain.User{}, domain.ErrUserNotFound).Once()
		server := newServer(store, "u-gone")

		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusNotFound, res.Code)
		assert.Equal(t, "user-not-found", res.Body.String())
	})

	t.Run("history failure", func(t *testing.T) {
		store := &MockStore{}
		store.On("GetUserById", mock.Anything, "u-1").Return(domain.User{Id: "u-1"}, nil).Once()
		store.On("HistoryByUser", mock.Anything, "u-1", historyLimit).
			Return([]domain.HistoryEntry(nil), domain.UnexpectedDatabaseError).Once()
		server := newServer(store, "u-1")

		res := httptest.NewRecorder()
		server.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/profile", nil))

		assert.Equal(t, http.StatusInternalServerError, res.Code)
	})
}
