package game

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sendBufferSize = 256

	// Pings must arrive inside the peer's pong window (pongWait) or the
	// read side times the connection out.
	pingInterval = 45 * time.Second
)

type session struct {
	id        string
	roomCode  string
	conn      NetworkSession
	send      chan []byte
	pingEvery time.Duration
	limiter   *rate.Limiter
}

func newSession(id, roomCode string, conn NetworkSession) *session {
	return &session{
		id:        id,
		roomCode:  roomCode,
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		pingEvery: pingInterval,
		limiter:   rate.NewLimiter(5, 10),
	}
}

// WritePump serializes all writes to the underlying connection and keeps
// it alive with periodic pings. It exits when the hub removes the session
// and closes the send channel, or when any write fails.
func (s *session) WritePump() {
	ticker := time.NewTicker(s.pingEvery)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-s.send:
			if !ok {
				return
			}
			if err := s.conn.Write(data); err != nil {
				return
			}
		case <-ticker.C:
			if err := s.conn.Ping(); err != nil {
				return
			}
		}
	}
}

// Hub maps a room code to its live connections and fans messages out to
// them. Connection membership may change concurrently with game-state
// mutation; sends are non-blocking pushes onto per-session buffers so the
// read lock is held only briefly and an in-flight fan-out never tears.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[string]*session
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[string]*session)}
}

func (h *Hub) Add(s *session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[s.roomCode]
	if !ok {
		room = make(map[string]*session)
		h.rooms[s.roomCode] = room
	}
	room[s.id] = s
}

// Remove detaches a session and closes its send channel, stopping the
// write pump. Safe to call for an already-removed session.
func (h *Hub) Remove(roomCode, sessionId string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[roomCode]
	if !ok {
		return
	}
	s, ok := room[sessionId]
	if !ok {
		return
	}
	delete(room, sessionId)
	if len(room) == 0 {
		delete(h.rooms, roomCode)
	}
	close(s.send)
}

func (h *Hub) Broadcast(roomCode string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.rooms[roomCode] {
		select {
		case s.send <- data:
		default:
			// Slow consumer, drop rather than stall the room.
		}
	}
}

func (h *Hub) Send(roomCode, sessionId string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	s, ok := h.rooms[roomCode][sessionId]
	if !ok {
		return
	}
	select {
	case s.send <- data:
	default:
	}
}
