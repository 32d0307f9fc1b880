package game

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"wordrush/domain"
)

// Reconciler applies end-of-round rating deltas and writes per-player
// history. It runs exactly once per round, after Finalize, and is
// best-effort: persistence failures are logged and never block the
// player-facing game-end broadcast.
type Reconciler struct {
	store ResultStore
}

func NewReconciler(store ResultStore) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile needs a comparison pair: with fewer than two authenticated
// finishers no ratings move and no history is recorded. Otherwise the top
// two by score are treated as winner and loser regardless of headcount;
// everyone else gets a history entry with a zero delta.
func (rc *Reconciler) Reconcile(ctx context.Context, outcome Outcome) {
	if len(outcome.Ranked) < 2 {
		return
	}

	winner, loser := outcome.Ranked[0], outcome.Ranked[1]
	deltaWinner, deltaLoser := ratingDeltas(winner.JoinRating, loser.JoinRating)

	if err := rc.store.UpdateRoundStats(ctx, winner.UserId, deltaWinner, winner.Score, true); err != nil {
		slog.Error("reconcile: winner stats update failed",
			"round_id", outcome.RoundId,
			"user_id", winner.UserId,
			"error", err.Error(),
		)
	}
	if err := rc.store.UpdateRoundStats(ctx, loser.UserId, deltaLoser, loser.Score, false); err != nil {
		slog.Error("reconcile: loser stats update failed",
			"round_id", outcome.RoundId,
			"user_id", loser.UserId,
			"error", err.Error(),
		)
	}

	for i, player := range outcome.Ranked {
		delta := 0
		switch i {
		case 0:
			delta = deltaWinner
		case 1:
			delta = deltaLoser
		}

		entry := domain.HistoryEntry{
			Id:              uuid.NewString(),
			RoundId:         outcome.RoundId,
			RoomCode:        outcome.RoomCode,
			UserId:          player.UserId,
			Score:           player.Score,
			Placement:       player.Placement,
			WordLength:      outcome.Config.WordLength,
			DurationMinutes: outcome.Config.DurationMinutes,
			Opponents:       len(outcome.Ranked) - 1,
			RatingDelta:     delta,
			RatingAfter:     player.JoinRating + delta,
			FinishedAt:      outcome.FinishedAt,
		}
		if err := rc.store.AppendHistory(ctx, entry); err != nil {
			slog.Error("reconcile: history write failed",
				"round_id", outcome.RoundId,
				"user_id", player.UserId,
				"error", err.Error(),
			)
		}
	}
}
