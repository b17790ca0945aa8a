package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abdhesh369/Portfolio-sub001/internal/domain/content"
)

// TelegramNotifier 把聯絡表單訊息推送到站主的 Telegram chat。
// 推送為 best-effort：失敗只記錄，不影響訪客請求。
type TelegramNotifier struct {
	token      string
	chatID     int64
	prefix     string
	baseURL    string
	httpClient *http.Client
}

func NewTelegramNotifier(token string, chatID int64, prefix string) *TelegramNotifier {
	return &TelegramNotifier{
		token:   token,
		chatID:  chatID,
		prefix:  prefix,
		baseURL: "https://api.telegram.org",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyContactMessage 將新的聯絡訊息摘要推送出去。
func (n *TelegramNotifier) NotifyContactMessage(ctx context.Context, m content.Message) error {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact message from %s <%s>", m.Name, m.Email)
	if m.Subject != "" {
		fmt.Fprintf(&b, "\nSubject: %s", m.Subject)
	}
	body := m.Body
	if len(body) > 300 {
		cut := 300
		// 不在多位元組字元中間截斷
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "…"
	}
	fmt.Fprintf(&b, "\n\n%s", body)
	return n.send(ctx, b.String())
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	if n == nil {
		return fmt.Errorf("telegram notifier is nil")
	}
	if n.token == "" || n.chatID == 0 {
		return fmt.Errorf("telegram token or chat_id missing")
	}

	fullText := text
	if n.prefix != "" {
		fullText = fmt.Sprintf("[%s] %s", n.prefix, text)
	}

	payload := map[string]interface{}{
		"chat_id": n.chatID,
		"text":    fullText,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram send failed status=%d body=%s", resp.StatusCode, string(raw))
	}
	return nil
}
