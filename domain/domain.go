package domain

import "time"

type User struct {
	Id           string
	Username     string
	PasswordHash string
	Rating       int
	TotalGames   int
	TotalWins    int
	TotalScore   int
}

// DefaultRating is assigned to every freshly created account.
const DefaultRating = 1000

// HistoryEntry is the per-round record written for each authenticated
// participant of a finished round.
type HistoryEntry struct {
	Id              string
	RoundId         string
	RoomCode        string
	UserId          string
	Score           int
	Placement       int
	WordLength      int
	DurationMinutes int
	Opponents       int
	RatingDelta     int
	RatingAfter     int
	FinishedAt      time.Time
}
