package game

import "errors"

// Claim rejection reasons, sent back verbatim in word_rejected packets.
var (
	ErrRoundNotActive   = errors.New("round-not-active")
	ErrUnknownPlayer    = errors.New("unknown-player")
	ErrWrongLength      = errors.New("wrong-word-length")
	ErrNotAWord         = errors.New("not-a-word")
	ErrTilesUnavailable = errors.New("tiles-not-available")
	ErrTileMismatch     = errors.New("tile-letter-mismatch")
)
