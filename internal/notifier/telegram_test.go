package notifier_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ptaljaard1985/health-dashboard/internal/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestTelegram_Send(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	telegram := notifier.NewTelegram(server.URL, "bot-token", "chat-42", server.Client())
	require.NoError(t, telegram.Send(context.Background(), "<b>hello</b>"))

	assert.Equal(t, "/botbot-token/sendMessage", gotPath)
	assert.Equal(t, "chat-42", gotPayload["chat_id"])
	assert.Equal(t, "<b>hello</b>", gotPayload["text"])
	assert.Equal(t, "HTML", gotPayload["parse_mode"])
}

func TestTelegram_Send_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	telegram := notifier.NewTelegram(server.URL, "bot-token", "chat-42", server.Client())
	err := telegram.Send(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
