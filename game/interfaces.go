package game

import (
	"context"

	"wordrush/domain"
)

type NetworkSession interface {
	Close(errCode string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

type TokenVerifier interface {
	Verify(token string) (string, error)
}

type UserGetter interface {
	GetUserById(ctx context.Context, id string) (domain.User, error)
}

// ResultStore is the slice of the document store touched at round end.
type ResultStore interface {
	UpdateRoundStats(ctx context.Context, userId string, ratingDelta, scoreAdd int, won bool) error
	AppendHistory(ctx context.Context, entry domain.HistoryEntry) error
}
