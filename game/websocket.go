package game

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	// pongWait bounds how long a peer may stay silent; the write pump's
	// pingInterval must fit inside it.
	pongWait   = time.Minute
	writeWait  = 10 * time.Second
	closeGrace = 20 * time.Second
)

// websocketConnection adapts a gorilla connection to NetworkSession. The
// read deadline arms at construction and every pong pushes it forward, so
// a peer that stops answering pings fails the next Read and the session
// loop cleans the player up.
type websocketConnection struct {
	socket *websocket.Conn
}

func NewWebsocketConnection(conn *websocket.Conn) *websocketConnection {
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	return &websocketConnection{socket: conn}
}

func (wc *websocketConnection) Write(data []byte) error {
	wc.socket.SetWriteDeadline(time.Now().Add(writeWait))
	return wc.socket.WriteMessage(websocket.TextMessage, data)
}

func (wc *websocketConnection) Ping() error {
	return wc.socket.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (wc *websocketConnection) Read() ([]byte, error) {
	_, p, err := wc.socket.ReadMessage()
	return p, err
}

func (wc *websocketConnection) Close(errCode string) {
	wc.socket.SetWriteDeadline(time.Now().Add(closeGrace))
	wc.socket.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, errCode))
	wc.socket.Close()
}
