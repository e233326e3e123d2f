package update

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports a body that is not a Telegram update: invalid JSON, or
// JSON without a recognizable update_id field.
var ErrMalformed = errors.New("malformed update payload")

// Wire structs for the Telegram update schema. Only the fields this service
// reads are mapped; everything else is ignored by encoding/json.
type wireUpdate struct {
	UpdateID      *int64             `json:"update_id"`
	Message       *wireMessage       `json:"message"`
	EditedMessage *wireMessage       `json:"edited_message"`
	Callback      *wireCallbackQuery `json:"callback_query"`
}

type wireMessage struct {
	MessageID int64     `json:"message_id"`
	From      *wireUser `json:"from"`
	Chat      *wireChat `json:"chat"`
	Text      string    `json:"text"`
}

type wireUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

type wireChat struct {
	ID int64 `json:"id"`
}

type wireCallbackQuery struct {
	ID      string       `json:"id"`
	From    *wireUser    `json:"from"`
	Message *wireMessage `json:"message"`
	Data    string       `json:"data"`
}

// Decode turns a raw webhook body into a normalized Update.
// It is total: any input yields either a valid Update (possibly KindIgnored)
// or an error wrapping ErrMalformed. It has no side effects.
func Decode(raw []byte) (Update, error) {
	var w wireUpdate
	if err := json.Unmarshal(raw, &w); err != nil {
		return Update{}, fmt.Errorf("%w: %s", ErrMalformed, "invalid JSON")
	}
	if w.UpdateID == nil {
		return Update{}, fmt.Errorf("%w: %s", ErrMalformed, "missing update_id")
	}

	u := Update{ID: *w.UpdateID, Kind: KindIgnored}

	switch {
	case w.Message != nil && w.Message.Text != "":
		u.Kind = KindText
		u.Text = w.Message.Text
		u.From = normalizeUser(w.Message.From)
		if w.Message.Chat != nil {
			u.ChatID = w.Message.Chat.ID
		}
	case w.Callback != nil:
		u.Kind = KindCallback
		u.From = normalizeUser(w.Callback.From)
		u.Callback = &Callback{Data: w.Callback.Data}
		if w.Callback.Message != nil {
			u.Callback.MessageID = w.Callback.Message.MessageID
			if w.Callback.Message.Chat != nil {
				u.ChatID = w.Callback.Message.Chat.ID
			}
		}
	default:
		// Recognized update of a kind this bot does not handle. Normalized to
		// KindIgnored rather than rejected: Telegram retries on non-2xx, so an
		// error here would cause endless redelivery of valid-but-unwanted
		// updates.
		if w.Message != nil {
			u.From = normalizeUser(w.Message.From)
			if w.Message.Chat != nil {
				u.ChatID = w.Message.Chat.ID
			}
		}
	}

	return u, nil
}

func normalizeUser(w *wireUser) User {
	if w == nil {
		return User{}
	}
	name := strings.TrimSpace(w.FirstName + " " + w.LastName)
	if name == "" {
		name = w.Username
	}
	return User{ID: w.ID, Name: name}
}
