package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleStatus(t *testing.T) {
	t.Run("enabled but disconnected shows hint", func(t *testing.T) {
		state := &MockConnectionState{}
		state.On("Connected").Return(false)
		state.On("Sources").Return(nil)

		w := httptest.NewRecorder()
		HandleStatus(true, state).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.ListenerEnabled)
		assert.False(t, resp.Connected)
		assert.Equal(t, []string{}, resp.Sources)
		assert.Equal(t, "请在设置中关闭再重新开启通知监听权限", resp.Hint)
		assert.True(t, strings.HasPrefix(resp.Text, "【服务状态】"))
	})

	t.Run("connected", func(t *testing.T) {
		state := &MockConnectionState{}
		state.On("Connected").Return(true)
		state.On("Sources").Return([]string{"ingest", "termux"})

		w := httptest.NewRecorder()
		HandleStatus(true, state).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/status", nil))

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Connected)
		assert.Equal(t, []string{"ingest", "termux"}, resp.Sources)
		assert.Empty(t, resp.Hint)
	})
}

func TestHandleLog(t *testing.T) {
	state := &MockConnectionState{}
	state.On("Connected").Return(true)

	w := httptest.NewRecorder()
	HandleLog(true, state, staticLog("\n[09:00:00] 【新通知】")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/log", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "【服务状态】"))
	assert.True(t, strings.HasSuffix(body, "———————— 通知监听日志 ————————\n[09:00:00] 【新通知】"))
}
