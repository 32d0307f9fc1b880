package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"wordrush/domain"
)

type PostgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresRepo(ctx context.Context, connString string) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	return &PostgresRepo{pool: pool}, nil
}

func (pg *PostgresRepo) Close() {
	pg.pool.Close()
}

func classify(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return domain.ErrUserNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %w", domain.UnexpectedDatabaseError, err)
	}
}

func (pg *PostgresRepo) CreateUser(ctx context.Context, username string, passwordHash string) (string, error) {
	row := pg.pool.QueryRow(ctx,
		"INSERT INTO users(username, password_hash, rating) VALUES($1, $2, $3) RETURNING id",
		username, passwordHash, domain.DefaultRating)

	var id string
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// "23505" is the PostgreSQL error code for unique_violation
			if pgErr.Code == "23505" {
				return "", domain.ErrDuplicateUsername
			}
		}
		return "", classify(err)
	}

	return id, nil
}

func (pg *PostgresRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	user := domain.User{Username: username}

	row := pg.pool.QueryRow(ctx,
		"SELECT id, password_hash, rating, total_games, total_wins, total_score FROM users WHERE username = $1",
		username)

	err := row.Scan(&user.Id, &user.PasswordHash, &user.Rating, &user.TotalGames, &user.TotalWins, &user.TotalScore)
	if err != nil {
		return domain.User{}, classify(err)
	}

	return user, nil
}

func (pg *PostgresRepo) GetUserById(ctx context.Context, id string) (domain.User, error) {
	user := domain.User{Id: id}

	row := pg.pool.QueryRow(ctx,
		"SELECT username, password_hash, rating, total_games, total_wins, total_score FROM users WHERE id = $1",
		id)

	err := row.Scan(&user.Username, &user.PasswordHash, &user.Rating, &user.TotalGames, &user.TotalWins, &user.TotalScore)
	if err != nil {
		return domain.User{}, classify(err)
	}

	return user, nil
}

// Leaderboard returns users ordered by rating, best first.
func (pg *PostgresRepo) Leaderboard(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := pg.pool.Query(ctx,
		"SELECT id, username, rating, total_games, total_wins, total_score FROM users ORDER BY rating DESC, username ASC LIMIT $1",
		limit)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, limit)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Id, &u.Username, &u.Rating, &u.TotalGames, &u.TotalWins, &u.TotalScore); err != nil {
			return nil, classify(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return users, nil
}

// UpdateRoundStats applies a rating delta and lifetime counters for one
// finished round.
func (pg *PostgresRepo) UpdateRoundStats(ctx context.Context, userId string, ratingDelta, scoreAdd int, won bool) error {
	wins := 0
	if won {
		wins = 1
	}

	tag, err := pg.pool.Exec(ctx,
		`UPDATE users
		 SET rating = rating + $2,
		     total_games = total_games + 1,
		     total_wins = total_wins + $3,
		     total_score = total_score + $4
		 WHERE id = $1`,
		userId, ratingDelta, wins, scoreAdd)
	if err != nil {
		return classify(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (pg *PostgresRepo) AppendHistory(ctx context.Context, entry domain.HistoryEntry) error {
	_, err := pg.pool.Exec(ctx,
		`INSERT INTO game_history
		 (id, round_id, room_code, user_id, score, placement, word_length, duration_minutes, opponents, rating_delta, rating_after, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		entry.Id, entry.RoundId, entry.RoomCode, entry.UserId, entry.Score, entry.Placement,
		entry.WordLength, entry.DurationMinutes, entry.Opponents, entry.RatingDelta, entry.RatingAfter, entry.FinishedAt)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (pg *PostgresRepo) HistoryByUser(ctx context.Context, userId string, limit int) ([]domain.HistoryEntry, error) {
	rows, err := pg.pool.Query(ctx,
		`SELECT id, round_id, room_code, user_id, score, placement, word_length, duration_minutes, opponents, rating_delta, rating_after, finished_at
		 FROM game_history WHERE user_id = $1 ORDER BY finished_at DESC LIMIT $2`,
		userId, limit)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0, limit)
	for rows.Next() {
		var e domain.HistoryEntry
		err := rows.Scan(&e.Id, &e.RoundId, &e.RoomCode, &e.UserId, &e.Score, &e.Placement,
			&e.WordLength, &e.DurationMinutes, &e.Opponents, &e.RatingDelta, &e.RatingAfter, &e.FinishedAt)
		if err != nil {
			return nil, classify(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	return entries, nil
}
