package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
)

const (
	defaultTelegramAPI = "https://api.telegram.org"
	maxBatchRecords    = 10
)

// TelegramNotifier implements Notifier via the Telegram Bot API sendMessage
// method.
type TelegramNotifier struct {
	apiURL string
	token  string
	chatID string
	client *http.Client
}

// TelegramOption configures a TelegramNotifier.
type TelegramOption func(*TelegramNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) TelegramOption {
	return func(t *TelegramNotifier) {
		t.client = c
	}
}

// WithAPIURL overrides the Bot API base URL.
func WithAPIURL(u string) TelegramOption {
	return func(t *TelegramNotifier) {
		t.apiURL = strings.TrimRight(u, "/")
	}
}

// NewTelegramNotifier creates a notifier posting to chatID as the bot
// identified by token.
func NewTelegramNotifier(token, chatID string, opts ...TelegramOption) *TelegramNotifier {
	t := &TelegramNotifier{
		apiURL: defaultTelegramAPI,
		token:  token,
		chatID: chatID,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type telegramMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendDecision sends a single notification as one message.
func (t *TelegramNotifier) SendDecision(ctx context.Context, n *Notification) error {
	return t.post(ctx, FormatNotification(n))
}

// SendBatch sends several notifications for one search as a single message.
func (t *TelegramNotifier) SendBatch(ctx context.Context, ns []Notification, searchTitle string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%d new matches: %s</b>\n", len(ns), html.EscapeString(searchTitle))

	limit := min(len(ns), maxBatchRecords)
	for i := range limit {
		b.WriteString("\n")
		writeRecord(&b, &ns[i].Record)
	}

	if len(ns) > maxBatchRecords {
		fmt.Fprintf(&b, "\n... and %d more for %s", len(ns)-maxBatchRecords, html.EscapeString(searchTitle))
	}

	return t.post(ctx, b.String())
}

func (t *TelegramNotifier) post(ctx context.Context, text string) error {
	body, err := json.Marshal(telegramMessage{
		ChatID:                t.chatID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("marshaling telegram payload: %w", err)
	}

	u := t.apiURL + "/bot" + t.token + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("telegram rate limited (429)")
	}

	respBody, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if readErr != nil {
			return fmt.Errorf("telegram returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode, respBody)
	}

	var tr telegramResponse
	if err := json.Unmarshal(respBody, &tr); err == nil && !tr.OK {
		return fmt.Errorf("telegram rejected message: %s", tr.Description)
	}

	return nil
}
