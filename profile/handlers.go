package profile

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"wordrush/domain"
)

const (
	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
	historyLimit            = 50
)

type Store interface {
	GetUserById(ctx context.Context, id string) (domain.User, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.User, error)
	HistoryByUser(ctx context.Context, userId string, limit int) ([]domain.HistoryEntry, error)
}

type profileHandler struct {
	store Store
}

func NewProfileHandler(store Store) *profileHandler {
	return &profileHandler{store: store}
}

type userView struct {
	Id         string `json:"id"`
	Username   string `json:"username"`
	Rating     int    `json:"rating"`
	TotalGames int    `json:"total_games"`
	TotalWins  int    `json:"total_wins"`
	TotalScore int    `json:"total_score"`
}

func viewOf(u domain.User) userView {
	return userView{
		Id:         u.Id,
		Username:   u.Username,
		Rating:     u.Rating,
		TotalGames: u.TotalGames,
		TotalWins:  u.TotalWins,
		TotalScore: u.TotalScore,
	}
}

type historyView struct {
	RoundId         string `json:"round_id"`
	RoomCode        string `json:"room_code"`
	Score           int    `json:"score"`
	Placement       int    `json:"placement"`
	WordLength      int    `json:"word_length"`
	DurationMinutes int    `json:"timer_minutes"`
	Opponents       int    `json:"opponents"`
	RatingDelta     int    `json:"rating_delta"`
	RatingAfter     int    `json:"rating_after"`
	FinishedAt      int64  `json:"finished_at"`
}

func (ph *profileHandler) LeaderboardHandler(ctx *gin.Context) {
	limit := defaultLeaderboardLimit
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 && parsed <= maxLeaderboardLimit {
			limit = parsed
		}
	}

	users, err := ph.store.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		slog.Error("leaderboard read failed", "error", err.Error())
		ctx.String(http.StatusInternalServerError, "unknown-error")
		ctx.Abort()
		return
	}

	views := make([]userView, len(users))
	for i, u := range users {
		views[i] = viewOf(u)
	}
	ctx.JSON(http.StatusOK, gin.H{"leaderboard": views})
}

// ProfileHandler serves the authenticated user's profile plus recent
// round history. Requires the auth middleware to have set "id".
func (ph *profileHandler) ProfileHandler(ctx *gin.Context) {
	id := ctx.GetString("id")
	if id == "" {
		ctx.String(http.StatusUnauthorized, "missing-token")
		ctx.Abort()
		return
	}

	user, err := ph.store.GetUserById(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			ctx.String(http.StatusNotFound, "user-not-found")
		} else {
			slog.Error("profile read failed", "user_id", id, "error", err.Error())
			ctx.String(http.StatusInternalServerError, "unknown-error")
		}
		ctx.Abort()
		return
	}

	entries, err := ph.store.HistoryByUser(ctx.Request.Context(), id, historyLimit)
	if err != nil {
		slog.Error("history read failed", "user_id", id, "error", err.Error())
		ctx.String(http.StatusInternalServerError, "unknown-error")
		ctx.Abort()
		return
	}

	history := make([]historyView, len(entries))
	for i, e := range entries {
		history[i] = historyView{
			RoundId:         e.RoundId,
			RoomCode:        e.RoomCode,
			Score:           e.Score,
			Placement:       e.Placement,
			WordLength:      e.WordLength,
			DurationMinutes: e.DurationMinutes,
			Opponents:       e.Opponents,
			RatingDelta:     e.RatingDelta,
			RatingAfter:     e.RatingAfter,
			FinishedAt:      e.FinishedAt.Unix(),
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"user": viewOf(user), "history": history})
}
