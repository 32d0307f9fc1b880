package game

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wordrush/domain"
	"wordrush/words"
)

const (
	spawnInterval     = 4 * time.Second
	countdownInterval = time.Second
)

// Service is the room registry and the owner of every round's timer
// loops. Rounds are retained after they end; they are simply no longer
// timed.
type Service struct {
	mu    sync.RWMutex
	rooms map[string]*Round

	hub        *Hub
	validator  words.Validator
	users      UserGetter
	tokens     TokenVerifier
	reconciler *Reconciler
}

func NewService(validator words.Validator, users UserGetter, tokens TokenVerifier, store ResultStore) *Service {
	return &Service{
		rooms:      make(map[string]*Round),
		hub:        NewHub(),
		validator:  validator,
		users:      users,
		tokens:     tokens,
		reconciler: NewReconciler(store),
	}
}

// CreateRoom allocates a fresh room code, retrying on collision, and
// registers a new round under it.
func (s *Service) CreateRoom(cfg Config, creator *domain.User) *Round {
	s.mu.Lock()
	defer s.mu.Unlock()

	for {
		code := newRoomCode()
		if _, exists := s.rooms[code]; exists {
			continue
		}
		round := NewRound(code, cfg, creator, s.validator)
		s.rooms[code] = round
		return round
	}
}

func (s *Service) Room(code string) (*Round, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	round, ok := s.rooms[code]
	return round, ok
}

// roomOrCreate mirrors the create-on-first-connect behavior the clients
// rely on when they share a code out of band.
func (s *Service) roomOrCreate(code string) *Round {
	s.mu.Lock()
	defer s.mu.Unlock()

	if round, ok := s.rooms[code]; ok {
		return round
	}
	round := NewRound(code, Config{}, nil, s.validator)
	s.rooms[code] = round
	return round
}

// ResolveUser turns an optional session token into an authenticated user,
// or nil. Invalid, expired, and unresolvable tokens all degrade to
// anonymous; a connection is never rejected over authentication.
func (s *Service) ResolveUser(ctx context.Context, token string) *domain.User {
	if token == "" {
		return nil
	}
	userId, err := s.tokens.Verify(token)
	if err != nil {
		slog.Debug("token resolution failed, continuing anonymous", "error", err.Error())
		return nil
	}
	user, err := s.users.GetUserById(ctx, userId)
	if err != nil {
		slog.Warn("authenticated user lookup failed, continuing anonymous",
			"user_id", userId,
			"error", err.Error(),
		)
		return nil
	}
	return &user
}

// HandleConnection runs the read loop for one websocket until it drops.
// Malformed and unrecognized messages are ignored; a read error is an
// implicit leave.
func (s *Service) HandleConnection(ctx context.Context, roomCode string, conn NetworkSession) {
	round := s.roomOrCreate(roomCode)
	sess := newSession(uuid.NewString(), roomCode, conn)
	s.hub.Add(sess)
	go sess.WritePump()

	joined := false
	for {
		data, err := conn.Read()
		if err != nil {
			break
		}
		if !sess.limiter.Allow() {
			continue
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}

		switch msg.Type {
		case msgJoin:
			if s.handleJoin(ctx, round, sess, msg) {
				joined = true
			}
		case msgStartGame:
			s.handleStart(round)
		case msgSubmitWord:
			s.handleClaim(round, sess, msg)
		default:
			// Unknown message kinds never crash the room.
		}
	}

	s.hub.Remove(roomCode, sess.id)
	if joined {
		if name, roster, ok := round.Leave(sess.id); ok {
			s.hub.Broadcast(roomCode, packetPlayerLeft(name, roster))
		}
	}
	conn.Close("")
}

func (s *Service) handleJoin(ctx context.Context, round *Round, sess *session, msg clientMessage) bool {
	now := time.Now()
	user := s.ResolveUser(ctx, msg.Token)

	name := msg.PlayerName
	if name == "" && user != nil {
		name = user.Username
	}
	if name == "" {
		name = "Anonymous"
	}

	roster, ok := round.Join(sess.id, name, user, now)
	if !ok {
		// The round finished before this client arrived; tell them how
		// it went instead of seating them at a dead table.
		reason, scores, _ := round.EndedInfo()
		s.hub.Send(round.Code(), sess.id, packetGameEnded(reason, scores))
		return false
	}

	s.hub.Broadcast(round.Code(), packetPlayerJoined(name, roster))
	s.hub.Send(round.Code(), sess.id, packetGameState(round.Snapshot(now)))

	slog.Info("player joined",
		"room", round.Code(),
		"player", name,
		"authenticated", user != nil,
	)
	return true
}

func (s *Service) handleStart(round *Round) {
	now := time.Now()
	if !round.Start(now) {
		return
	}

	cfg := round.Config()
	s.hub.Broadcast(round.Code(), packetGameStarted(cfg.DurationMinutes, round.TimeRemaining(now)))

	go s.runSpawnLoop(round)
	go s.runCountdownLoop(round)

	slog.Info("round started",
		"room", round.Code(),
		"word_length", cfg.WordLength,
		"duration_minutes", cfg.DurationMinutes,
	)
}

func (s *Service) handleClaim(round *Round, sess *session, msg clientMessage) {
	res, err := round.SubmitClaim(sess.id, msg.Word, msg.SelectedLetterIds, time.Now())
	if err != nil {
		s.hub.Send(round.Code(), sess.id, packetWordRejected(msg.Word, err.Error()))
		return
	}
	s.hub.Broadcast(round.Code(), packetWordAccepted(res))
}

// runSpawnLoop draws a tile on a fixed cadence and doubles as the
// terminal-condition watchdog. It stops within one interval of the round
// ending, whoever ends it.
func (s *Service) runSpawnLoop(round *Round) {
	ticker := time.NewTicker(spawnInterval)
	defer ticker.Stop()

	for {
		now := time.Now()
		if tile, ok := round.SpawnTile(now); ok {
			s.hub.Broadcast(round.Code(), packetNewLetter(tile.Letter, round.Table()))
		}
		if reason, terminal := round.TerminalReason(now); terminal {
			s.finishRound(context.Background(), round, reason, now)
			return
		}
		if round.Ended() {
			return
		}
		<-ticker.C
	}
}

func (s *Service) runCountdownLoop(round *Round) {
	ticker := time.NewTicker(countdownInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		if round.Ended() {
			return
		}
		remaining := round.TimeRemaining(now)
		s.hub.Broadcast(round.Code(), packetTimerUpdate(remaining))
		if remaining <= 0 {
			s.finishRound(context.Background(), round, ReasonTimeUp, now)
			return
		}
	}
}

// finishRound performs the exactly-once end-of-round sequence. The
// Finalize gate resolves the race between the two timer loops; the loser
// simply returns.
func (s *Service) finishRound(ctx context.Context, round *Round, reason string, now time.Time) {
	outcome, ok := round.Finalize(reason, now)
	if !ok {
		return
	}

	s.reconciler.Reconcile(ctx, outcome)
	s.hub.Broadcast(round.Code(), packetGameEnded(outcome.Reason, outcome.FinalScores))

	slog.Info("round finished",
		"room", round.Code(),
		"reason", reason,
		"players", len(outcome.FinalScores),
	)
}
