// Package update normalizes raw Telegram webhook payloads into a single
// tagged Update value consumed by the dispatcher.
package update

// Kind classifies an Update into exactly one payload variant.
type Kind int

const (
	// KindIgnored marks a recognized but unhandled update (edited message,
	// text-less message, poll, ...). Dispatch treats it as a successful no-op.
	KindIgnored Kind = iota
	// KindText is a message update carrying non-empty text.
	KindText
	// KindCallback is a callback-query update from an inline keyboard.
	KindCallback
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCallback:
		return "callback"
	default:
		return "ignored"
	}
}

// User identifies the originating Telegram user.
type User struct {
	ID   int64
	Name string
}

// Callback carries the payload of a callback-query update.
type Callback struct {
	Data      string
	MessageID int64
}

// Update is the normalized inbound event. It is immutable, scoped to one
// request and never persisted. ID is monotonic per sender and used only for
// log correlation; duplicates are possible (at-least-once delivery).
type Update struct {
	ID       int64
	From     User
	ChatID   int64
	Kind     Kind
	Text     string
	Callback *Callback
}
