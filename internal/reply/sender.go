// Package reply is the outbound side of a handler invocation: a Sender bound
// to the chat an update originated from.
package reply

import (
	"context"
	"fmt"

	"movie-search-bot/pkg/telegram"
)

// MaxMessageLen is the Telegram ceiling for a single text message.
const MaxMessageLen = 4095

// Button is one selectable item offered to the user; Data comes back as the
// callback payload when the button is pressed.
type Button struct {
	Label string
	Data  string
}

// Sender emits replies to a single chat. Implementations perform no retries;
// a failed send surfaces to the handler as the invocation's failure.
type Sender interface {
	// SendText sends body as one or more ordered messages. Bodies longer than
	// MaxMessageLen are split into non-overlapping chunks, each an independent
	// platform call. On failure the returned error is a *DeliveryError carrying
	// the number of chunks already delivered.
	SendText(ctx context.Context, body string) error
	// SendButtons sends body with an inline keyboard, one button per row.
	SendButtons(ctx context.Context, body string, buttons []Button) error
	// SendPhoto sends raw image bytes with a caption.
	SendPhoto(ctx context.Context, img []byte, caption string) error
}

// DeliveryError reports a failed platform send. ChunksSent counts the chunks
// delivered before the failure, so callers can reason about partial delivery.
type DeliveryError struct {
	ChunksSent int
	Err        error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery failed after %d chunk(s): %v", e.ChunksSent, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

type chatSender struct {
	bot    *telegram.Bot
	chatID int64
}

// NewChatSender returns a Sender that delivers through the given bot client to
// one chat.
func NewChatSender(bot *telegram.Bot, chatID int64) Sender {
	return &chatSender{bot: bot, chatID: chatID}
}

func (s *chatSender) SendText(ctx context.Context, body string) error {
	chunks := SplitText(body, MaxMessageLen)
	for i, chunk := range chunks {
		if err := s.bot.SendMessage(ctx, s.chatID, chunk); err != nil {
			return &DeliveryError{ChunksSent: i, Err: err}
		}
	}
	return nil
}

func (s *chatSender) SendButtons(ctx context.Context, body string, buttons []Button) error {
	rows := make([][]telegram.InlineKeyboardButton, 0, len(buttons))
	for _, b := range buttons {
		rows = append(rows, []telegram.InlineKeyboardButton{
			{Text: b.Label, CallbackData: b.Data},
		})
	}
	markup := &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
	if err := s.bot.SendMessageWithMarkup(ctx, s.chatID, body, markup); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}

func (s *chatSender) SendPhoto(ctx context.Context, img []byte, caption string) error {
	if err := s.bot.SendPhoto(ctx, s.chatID, img, caption); err != nil {
		return &DeliveryError{Err: err}
	}
	return nil
}

// SplitText splits body into ordered chunks of at most limit units each.
// Concatenating the chunks in order reconstructs body exactly. The chunk count
// is always ceil(len(body)/limit); an empty body yields no chunks.
func SplitText(body string, limit int) []string {
	if body == "" {
		return nil
	}
	if len(body) <= limit {
		return []string{body}
	}
	chunks := make([]string, 0, (len(body)+limit-1)/limit)
	for start := 0; start < len(body); start += limit {
		end := start + limit
		if end > len(body) {
			end = len(body)
		}
		chunks = append(chunks, body[start:end])
	}
	return chunks
}
