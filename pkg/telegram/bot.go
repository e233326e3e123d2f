package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"golang.org/x/time/rate"
)

// Telegram allows roughly 30 messages per second per bot; the limiter keeps
// bursts of chunked replies under that ceiling. No retries are performed here.
const (
	sendRatePerSecond = 30
	sendBurst         = 5
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(sendRatePerSecond), sendBurst),
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	payload := map[string]string{"url": webhookURL}
	body, _ := json.Marshal(payload)

	resp, err := b.postJSON(ctx, "setWebhook", body)
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("failed to decode webhook response: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.sendMessage(ctx, SendMessageRequest{ChatID: chatID, Text: text})
}

// SendMessageWithMarkup sends a text message with an inline keyboard attached.
func (b *Bot) SendMessageWithMarkup(ctx context.Context, chatID int64, text string, markup *InlineKeyboardMarkup) error {
	return b.sendMessage(ctx, SendMessageRequest{ChatID: chatID, Text: text, ReplyMarkup: markup})
}

func (b *Bot) sendMessage(ctx context.Context, payload SendMessageRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	resp, err := b.postJSON(ctx, "sendMessage", body)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendMessage API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

// SendPhoto uploads the given image bytes as a photo message with a caption.
func (b *Bot) SendPhoto(ctx context.Context, chatID int64, photo []byte, caption string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return fmt.Errorf("failed to build photo form: %w", err)
	}
	if caption != "" {
		if err := mw.WriteField("caption", caption); err != nil {
			return fmt.Errorf("failed to build photo form: %w", err)
		}
	}
	fw, err := mw.CreateFormFile("photo", "photo.jpg")
	if err != nil {
		return fmt.Errorf("failed to build photo form: %w", err)
	}
	if _, err := fw.Write(photo); err != nil {
		return fmt.Errorf("failed to build photo form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to build photo form: %w", err)
	}

	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("send cancelled: %w", err)
	}

	url := fmt.Sprintf("%s/sendPhoto", b.apiURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to build sendPhoto request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram sendPhoto API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

func (b *Bot) postJSON(ctx context.Context, method string, body []byte) (*http.Response, error) {
	if err := b.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("send cancelled: %w", err)
	}

	url := fmt.Sprintf("%s/%s", b.apiURL, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return b.httpClient.Do(req)
}
