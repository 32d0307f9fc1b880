package storage_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"wordrush/domain"
	"wordrush/migrations"
	"wordrush/storage"
)

var repo *storage.PostgresRepo

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine3.22",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testusername"),
		postgres.WithPassword("testpassword"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		panic(err)
	}

	connString, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	if err := migrations.Migrate(connString); err != nil {
		panic(err)
	}

	repo, err = storage.NewPostgresRepo(ctx, connString)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	repo.Close()
	postgresContainer.Terminate(ctx)
	os.Exit(code)
}

func TestPostgresRepo_Users(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateUser", func(t *testing.T) {
		id, err := repo.CreateUser(ctx, "alice", "hashed_secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, id)
	})

	t.Run("CreateUser_Duplicate", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, "alice", "new_hash")
		assert.ErrorIs(t, err, domain.ErrDuplicateUsername)
	})

	t.Run("GetUserByUsername", func(t *testing.T) {
		user, err := repo.GetUserByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hashed_secret", user.PasswordHash)
		assert.Equal(t, domain.DefaultRating, user.Rating)
		assert.NotEmpty(t, user.Id)
	})

	t.Run("GetUserByUsername_NotFound", func(t *testing.T) {
		_, err := repo.GetUserByUsername(ctx, "ghost_user")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("GetUserById", func(t *testing.T) {
		id, err := repo.CreateUser(ctx, "bob", "hash2")
		require.NoError(t, err)

		user, err := repo.GetUserById(ctx, id)
		assert.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, "hash2", user.PasswordHash)
	})

	t.Run("GetUserById_NotFound", func(t *testing.T) {
		_, err := repo.GetUserById(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgresRepo_RoundStats(t *testing.T) {
	ctx := context.Background()

	winnerId, err := repo.CreateUser(ctx, "stats_winner", "hash")
	require.NoError(t, err)
	loserId, err := repo.CreateUser(ctx, "stats_loser", "hash")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateRoundStats(ctx, winnerId, 16, 42, true))
	require.NoError(t, repo.UpdateRoundStats(ctx, loserId, -16, 10, false))

	winner, err := repo.GetUserById(ctx, winnerId)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRating+16, winner.Rating)
	assert.Equal(t, 1, winner.TotalGames)
	assert.Equal(t, 1, winner.TotalWins)
	assert.Equal(t, 42, winner.TotalScore)

	loser, err := repo.GetUserById(ctx, loserId)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRating-16, loser.Rating)
	assert.Equal(t, 1, loser.TotalGames)
	assert.Equal(t, 0, loser.TotalWins)
	assert.Equal(t, 10, loser.TotalScore)

	t.Run("UnknownUser", func(t *testing.T) {
		err := repo.UpdateRoundStats(ctx, uuid.NewString(), 16, 0, true)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestPostgresRepo_Leaderboard(t *testing.T) {
	ctx := context.Background()

	topId, err := repo.CreateUser(ctx, "board_top", "hash")
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, "board_mid", "hash")
	require.NoError(t, err)
	require.NoError(t, repo.UpdateRoundStats(ctx, topId, 200, 0, true))

	board, err := repo.Leaderboard(ctx, 50)
	require.NoError(t, err)
	require.NotEmpty(t, board)
	assert.Equal(t, "board_top", board[0].Username)

	for i := 1; i < len(board); i++ {
		prev, cur := board[i-1], board[i]
		if prev.Rating == cur.Rating {
			assert.Less(t, prev.Username, cur.Username)
		} else {
			assert.Greater(t, prev.Rating, cur.Rating)
		}
	}

	t.Run("LimitIsRespected", func(t *testing.T) {
		board, err := repo.Leaderboard(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, board, 2)
	})
}

func TestPostgresRepo_History(t *testing.T) {
	ctx := context.Background()

	userId, err := repo.CreateUser(ctx, "history_user", "hash")
	require.NoError(t, err)

	first := domain.HistoryEntry{
		Id:              uuid.NewString(),
		RoundId:         uuid.NewString(),
		RoomCode:        "AB12CD",
		UserId:          userId,
		Score:           18,
		Placement:       1,
		WordLength:      4,
		DurationMinutes: 2,
		Opponents:       1,
		RatingDelta:     16,
		RatingAfter:     1016,
		FinishedAt:      time.Now().Add(-time.Hour),
	}
	second := first
	second.Id = uuid.NewString()
	second.RoundId = uuid.NewString()
	second.Score = 7
	second.Placement = 2
	second.RatingDelta = -16
	second.RatingAfter = 1000
	second.FinishedAt = time.Now()

	require.NoError(t, repo.AppendHistory(ctx, first))
	require.NoError(t, repo.AppendHistory(ctx, second))

	entries, err := repo.HistoryByUser(ctx, userId, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Most recent round first.
	assert.Equal(t, second.Id, entries[0].Id)
	assert.Equal(t, first.Id, entries[1].Id)

	got := entries[1]
	assert.Equal(t, first.RoomCode, got.RoomCode)
	assert.Equal(t, first.Score, got.Score)
	assert.Equal(t, first.Placement, got.Placement)
	assert.Equal(t, first.WordLength, got.WordLength)
	assert.Equal(t, first.DurationMinutes, got.DurationMinutes)
	assert.Equal(t, first.Opponents, got.Opponents)
	assert.Equal(t, first.RatingDelta, got.RatingDelta)
	assert.Equal(t, first.RatingAfter, got.RatingAfter)
	assert.WithinDuration(t, first.FinishedAt, got.FinishedAt, time.Second)

	t.Run("NoHistory", func(t *testing.T) {
		entries, err := repo.HistoryByUser(ctx, uuid.NewString(), 10)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
