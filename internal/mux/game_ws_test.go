package mux

import (
	"net/http"
	"ohheck-server/pkg/playable"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func readUntilKey(t *testing.T, conn *websocket.Conn, key string) *playable.Response {
	t.Helper()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		var res playable.Response
		if err := conn.ReadJSON(&res); err != nil {
			t.Fatalf("did not receive %q: %v", key, err)
		}

		if res.Key == key {
			return &res
		}
	}
}

func TestMux_getGameWS(t *testing.T) {
	ts, _ := newTestServer(t)
	assertPost(t, ts, "/game/new", "{}", nil, http.StatusCreated)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/ws?playerId=1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if !assert.NoError(t, err) {
		return
	}
	defer conn.Close()

	res := readUntilKey(t, conn, "game")
	assert.Equal(t, "oh-heck", res.Value)

	assert.NoError(t, conn.WriteJSON(playable.PayloadIn{Action: "state", Context: "abc"}))
	res = readUntilKey(t, conn, "game")
	assert.Equal(t, "abc", res.Context)

	assert.NoError(t, conn.WriteJSON(playable.PayloadIn{Action: "dance"}))
	res = readUntilKey(t, conn, "error")
	assert.Equal(t, "unknown action", res.Value)

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
