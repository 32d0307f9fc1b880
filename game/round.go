package game

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordrush/domain"
	"wordrush/words"
)

const (
	tableCapacity   = 26
	deadlockTimeout = 26 * time.Second

	defaultWordLength      = 3
	defaultDurationMinutes = 4
)

var allowedDurations = map[int]bool{2: true, 4: true, 6: true}

// Terminal reasons carried in the game_ended broadcast.
const (
	ReasonDeckEmpty = "deck-empty"
	ReasonStalled   = "stalled-table"
	ReasonTimeUp    = "time-up"
)

type Config struct {
	WordLength      int `json:"word_length"`
	DurationMinutes int `json:"timer_minutes"`
}

// normalized snaps out-of-range values to the defaults instead of failing.
func (c Config) normalized() Config {
	if c.WordLength < words.MinLength || c.WordLength > words.MaxLength {
		c.WordLength = defaultWordLength
	}
	if !allowedDurations[c.DurationMinutes] {
		c.DurationMinutes = defaultDurationMinutes
	}
	return c
}

func (c Config) duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

type Tile struct {
	Id        string `json:"id"`
	Letter    string `json:"letter"`
	Timestamp int64  `json:"timestamp"`
}

type PlayerInfo struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

type playerState struct {
	name       string
	score      int
	user       *domain.User
	joinRating int
	joinedAt   time.Time
}

// RankedPlayer is one authenticated finisher, ordered by final score.
type RankedPlayer struct {
	UserId     string
	Name       string
	Score      int
	Placement  int
	JoinRating int
}

// Outcome is the immutable snapshot Finalize hands to the reconciler and
// the final broadcast.
type Outcome struct {
	RoundId     string
	RoomCode    string
	Reason      string
	Config      Config
	FinishedAt  time.Time
	FinalScores []PlayerInfo
	Ranked      []RankedPlayer
}

// Round owns all mutable state of one play session. Every mutation runs
// under a single mutex so claim arbitration and tile spawning are
// serialized per room.
type Round struct {
	mu sync.Mutex

	code        string
	id          string
	cfg         Config
	creatorName string
	creator     *domain.User

	started     bool
	ended       bool
	endReason   string
	finalScores []PlayerInfo
	startedAt   time.Time
	lastSpawn   time.Time
	lastClaim   time.Time

	bag    *Bag
	table  []Tile
	roster map[string]*playerState

	validator words.Validator
}

func NewRound(code string, cfg Config, creator *domain.User, validator words.Validator) *Round {
	creatorName := "Anonymous"
	if creator != nil {
		creatorName = creator.Username
	}
	return &Round{
		code:        code,
		id:          uuid.NewString(),
		cfg:         cfg.normalized(),
		creatorName: creatorName,
		creator:     creator,
		bag:         NewBag(),
		table:       make([]Tile, 0, tableCapacity),
		roster:      make(map[string]*playerState),
		validator:   validator,
	}
}

func (r *Round) Code() string { return r.code }
func (r *Round) Id() string   { return r.id }

func (r *Round) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}

func (r *Round) CreatorName() string { return r.creatorName }

func (r *Round) Ended() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ended
}

// Join adds a player to the roster and returns the updated roster. The
// rating at join time is captured for the end-of-round delta computation.
// A finished round accepts no more players and returns ok=false.
func (r *Round) Join(sessionId, name string, user *domain.User, now time.Time) ([]PlayerInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ended {
		return nil, false
	}

	state := &playerState{name: name, joinedAt: now}
	if user != nil {
		state.user = user
		state.joinRating = user.Rating
	}
	r.roster[sessionId] = state
	return r.rosterLocked(), true
}

// EndedInfo reports the terminal reason and final scores of a finished
// round, for clients arriving after the fact.
func (r *Round) EndedInfo() (string, []PlayerInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ended {
		return "", nil, false
	}
	return r.endReason, r.finalScores, true
}

// Leave removes a player without touching scores already recorded. It is
// never a round-terminating event.
func (r *Round) Leave(sessionId string) (string, []PlayerInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.roster[sessionId]
	if !ok {
		return "", nil, false
	}
	delete(r.roster, sessionId)
	return state.name, r.rosterLocked(), true
}

// Start flips the started flag exactly once. A second start request is a
// no-op and returns false.
func (r *Round) Start(now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || r.ended {
		return false
	}
	r.started = true
	r.startedAt = now
	return true
}

// SpawnTile draws one letter into the table. No-op when the table is at
// capacity or the round is not running; returns false when nothing was
// drawn.
func (r *Round) SpawnTile(now time.Time) (Tile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started || r.ended || len(r.table) >= tableCapacity {
		return Tile{}, false
	}
	letter, ok := r.bag.Draw()
	if !ok {
		return Tile{}, false
	}
	tile := Tile{Id: uuid.NewString(), Letter: letter, Timestamp: now.Unix()}
	r.table = append(r.table, tile)
	r.lastSpawn = now
	return tile, true
}

// ClaimResult carries everything the accepted-word broadcast needs.
type ClaimResult struct {
	Word       string
	PlayerName string
	ScoreDelta int
	Table      []Tile
	Roster     []PlayerInfo
}

// SubmitClaim arbitrates a word claim. Preconditions are checked in order
// and the first failure wins; every failure maps to a reject reason, never
// a fatal error. Acceptance removes the claimed tiles and increments the
// score atomically with respect to any concurrent claim.
func (r *Round) SubmitClaim(sessionId, word string, tileIds []string, now time.Time) (ClaimResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started || r.ended {
		return ClaimResult{}, ErrRoundNotActive
	}
	player, ok := r.roster[sessionId]
	if !ok {
		return ClaimResult{}, ErrUnknownPlayer
	}

	w := strings.ToUpper(strings.TrimSpace(word))
	if len(w) != r.cfg.WordLength {
		return ClaimResult{}, ErrWrongLength
	}
	if !r.validator.Valid(w, r.cfg.WordLength) {
		return ClaimResult{}, ErrNotAWord
	}

	// The claimed id set must exactly match the letters needed: one
	// distinct tile per letter, no extras.
	if len(tileIds) != len(w) {
		return ClaimResult{}, ErrTileMismatch
	}

	byId := make(map[string]Tile, len(r.table))
	for _, t := range r.table {
		byId[t.Id] = t
	}

	claimed := make([]Tile, 0, len(tileIds))
	seen := make(map[string]struct{}, len(tileIds))
	for _, id := range tileIds {
		if _, dup := seen[id]; dup {
			return ClaimResult{}, ErrTilesUnavailable
		}
		seen[id] = struct{}{}
		tile, onTable := byId[id]
		if !onTable {
			return ClaimResult{}, ErrTilesUnavailable
		}
		claimed = append(claimed, tile)
	}

	need := make(map[string]int, len(w))
	for _, c := range w {
		need[string(c)]++
	}
	score := 0
	for _, tile := range claimed {
		if need[tile.Letter] == 0 {
			return ClaimResult{}, ErrTileMismatch
		}
		need[tile.Letter]--
		score += TileScore(tile.Letter)
	}

	player.score += score

	kept := make([]Tile, 0, len(r.table)-len(claimed))
	for _, t := range r.table {
		if _, taken := seen[t.Id]; !taken {
			kept = append(kept, t)
		}
	}
	r.table = kept
	r.lastClaim = now

	return ClaimResult{
		Word:       w,
		PlayerName: player.name,
		ScoreDelta: score,
		Table:      append([]Tile(nil), r.table...),
		Roster:     r.rosterLocked(),
	}, nil
}

// TerminalReason evaluates the three end-of-round rules: deck exhaustion,
// a full table nobody cleared for 26 seconds, and wall-clock expiry.
func (r *Round) TerminalReason(now time.Time) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started || r.ended {
		return "", false
	}
	if r.bag.Remaining() == 0 {
		return ReasonDeckEmpty, true
	}
	if len(r.table) >= tableCapacity {
		last := r.lastSpawn
		if r.lastClaim.After(last) {
			last = r.lastClaim
		}
		if !last.IsZero() && now.Sub(last) >= deadlockTimeout {
			return ReasonStalled, true
		}
	}
	if now.Sub(r.startedAt) >= r.cfg.duration() {
		return ReasonTimeUp, true
	}
	return "", false
}

// Finalize transitions to ended exactly once; the ended flag is the single
// gate, so whichever timer loop wins the race gets ok=true and performs
// reconciliation and the final broadcast. Later callers get ok=false.
func (r *Round) Finalize(reason string, now time.Time) (Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started || r.ended {
		return Outcome{}, false
	}
	r.ended = true
	r.endReason = reason
	r.finalScores = r.rosterLocked()

	ranked := make([]RankedPlayer, 0, len(r.roster))
	for _, state := range r.roster {
		if state.user == nil {
			continue
		}
		ranked = append(ranked, RankedPlayer{
			UserId:     state.user.Id,
			Name:       state.name,
			Score:      state.score,
			JoinRating: state.joinRating,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	for i := range ranked {
		ranked[i].Placement = i + 1
	}

	return Outcome{
		RoundId:     r.id,
		RoomCode:    r.code,
		Reason:      reason,
		Config:      r.cfg,
		FinishedAt:  now,
		FinalScores: r.finalScores,
		Ranked:      ranked,
	}, true
}

func (r *Round) Table() []Tile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Tile(nil), r.table...)
}

// TimeRemaining reports whole seconds left on the round clock, clamped at
// zero. Before start it reports the full duration.
func (r *Round) TimeRemaining(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timeRemainingLocked(now)
}

func (r *Round) timeRemainingLocked(now time.Time) int {
	if !r.started {
		return int(r.cfg.duration().Seconds())
	}
	remaining := r.cfg.duration() - now.Sub(r.startedAt)
	if remaining < 0 {
		remaining = 0
	}
	return int(remaining.Seconds())
}

// Snapshot is the state sent once to a freshly joined connection.
type Snapshot struct {
	Table           []Tile
	Roster          []PlayerInfo
	Started         bool
	WordLength      int
	DurationMinutes int
	TimeRemaining   int
}

func (r *Round) Snapshot(now time.Time) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	return Snapshot{
		Table:           append([]Tile(nil), r.table...),
		Roster:          r.rosterLocked(),
		Started:         r.started,
		WordLength:      r.cfg.WordLength,
		DurationMinutes: r.cfg.DurationMinutes,
		TimeRemaining:   r.timeRemainingLocked(now),
	}
}

// rosterLocked builds a stable roster view, ordered by join time so the
// client list does not jump around between broadcasts.
func (r *Round) rosterLocked() []PlayerInfo {
	type entry struct {
		info     PlayerInfo
		joinedAt time.Time
	}
	entries := make([]entry, 0, len(r.roster))
	for _, state := range r.roster {
		entries = append(entries, entry{
			info:     PlayerInfo{Name: state.name, Score: state.score},
			joinedAt: state.joinedAt,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].joinedAt.Equal(entries[j].joinedAt) {
			return entries[i].joinedAt.Before(entries[j].joinedAt)
		}
		return entries[i].info.Name < entries[j].info.Name
	})
	roster := make([]PlayerInfo, len(entries))
	for i, e := range entries {
		roster[i] = e.info
	}
	return roster
}
