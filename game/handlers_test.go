package game

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wordrush/domain"
)

func newCreateRoomServer(s *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := gin.New()
	server.POST("/create-room", NewGameHandler(s).CreateRoomHandler)
	return server
}

func TestCreateRoomHandler(t *testing.T) {
	t.Parallel()

	t.Run("anonymous with settings", func(t *testing.T) {
		s, _, _, _ := newTestService()
		server := newCreateRoomServer(s)

		req := httptest.NewRequest(http.MethodPost, "/create-room",
			bytes.NewBufferString(`{"word_length":5,"timer_minutes":6}`))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.Len(t, body["room_code"], roomCodeLength)
		assert.EqualValues(t, 5, body["word_length"])
		assert.EqualValues(t, 6, body["timer_minutes"])
		assert.Equal(t, "Anonymous", body["created_by"])

		_, ok := s.Room(body["room_code"].(string))
		assert.True(t, ok)
	})

	t.Run("empty body uses defaults", func(t *testing.T) {
		s, _, _, _ := newTestService()
		server := newCreateRoomServer(s)

		req := httptest.NewRequest(http.MethodPost, "/create-room", nil)
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.EqualValues(t, 3, body["word_length"])
		assert.EqualValues(t, 4, body["timer_minutes"])
	})

	t.Run("out of range settings snap to defaults", func(t *testing.T) {
		s, _, _, _ := newTestService()
		server := newCreateRoomServer(s)

		req := httptest.NewRequest(http.MethodPost, "/create-room",
			bytes.NewBufferString(`{"word_length":11,"timer_minutes":5}`))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.EqualValues(t, 3, body["word_length"])
		assert.EqualValues(t, 4, body["timer_minutes"])
	})

	t.Run("malformed body", func(t *testing.T) {
		s, _, _, _ := newTestService()
		server := newCreateRoomServer(s)

		req := httptest.NewRequest(http.MethodPost, "/create-room", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)

		assert.Equal(t, http.StatusBadRequest, res.Code)
		assert.Equal(t, "bad-request-format", res.Body.String())
	})

	t.Run("authenticated creator is credited", func(t *testing.T) {
		s, _, users, tokens := newTestService()
		tokens.On("Verify", "tok").Return("u-1", nil).Once()
		users.On("GetUserById", mock.Anything, "u-1").Return(domain.User{Id: "u-1", Username: "alice"}, nil).Once()
		server := newCreateRoomServer(s)

		req := httptest.NewRequest(http.MethodPost, "/create-room", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "tok"})
		res := httptest.NewRecorder()
		server.ServeHTTP(res, req)

		require.Equal(t, http.StatusOK, res.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
		assert.Equal(t, "alice", body["created_by"])
	})
}
