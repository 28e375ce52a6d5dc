package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ptaljaard1985/health-dashboard/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const DefaultAPIURL = "https://api.telegram.org"

// Telegram sends pre-formatted messages to a single chat. Fire and
// forget: an HTTP success is all the delivery confirmation there is.
type Telegram struct {
	apiURL     string
	botToken   string
	chatID     string
	httpClient *http.Client
}

func NewTelegram(apiURL, botToken, chatID string, httpClient *http.Client) *Telegram {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Telegram{
		apiURL:     apiURL,
		botToken:   botToken,
		chatID:     chatID,
		httpClient: httpClient,
	}
}

// Send posts the message with HTML parse mode.
func (t *Telegram) Send(ctx context.Context, message string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notifier.telegram.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       message,
		"parse_mode": "HTML",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("send message failed, unexpected status: %d", resp.StatusCode)
	}

	log.Debugln("telegram: message sent")
	return nil
}
