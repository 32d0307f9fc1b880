package game

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type GameHandler struct {
	service *Service
}

func NewGameHandler(service *Service) *GameHandler {
	return &GameHandler{service: service}
}

// CreateRoomHandler creates a room from an optional configuration body.
// Out-of-range values coerce to defaults rather than failing, and auth is
// optional: an unauthenticated creator is labeled "Anonymous".
func (h *GameHandler) CreateRoomHandler(ctx *gin.Context) {
	var cfg Config
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&cfg); err != nil {
			ctx.String(http.StatusBadRequest, "bad-request-format")
			ctx.Abort()
			return
		}
	}

	token, _ := ctx.Cookie("token")
	user := h.service.ResolveUser(ctx.Request.Context(), token)

	round := h.service.CreateRoom(cfg, user)
	roundCfg := round.Config()

	ctx.JSON(http.StatusOK, gin.H{
		"room_code":     round.Code(),
		"word_length":   roundCfg.WordLength,
		"timer_minutes": roundCfg.DurationMinutes,
		"created_by":    round.CreatorName(),
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WSHandler upgrades the connection and hands it to the game service for
// the lifetime of the socket.
func (h *GameHandler) WSHandler(ctx *gin.Context) {
	roomCode := ctx.Param("code")

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		slog.Error("ws upgrade failed",
			"room", roomCode,
			"ip", ctx.ClientIP(),
			"error", err.Error(),
		)
		return
	}

	h.service.HandleConnection(ctx.Request.Context(), roomCode, NewWebsocketConnection(conn))
}
