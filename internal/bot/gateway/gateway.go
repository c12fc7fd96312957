// Package gateway is the engine's view of the messaging platform: inbound
// updates already decoded into actions, and outbound send/edit/delete calls.
package gateway

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/teamfinder/internal/bot/action"
)

// Update is one inbound event.
type Update struct {
	UserID   int64
	Username string
	ChatID   int64
	// Private is set for one-to-one chats with the bot.
	Private bool
	// MessageID is the inbound message, or the message carrying the pressed button.
	MessageID int64
	// CallbackID is non-empty for button presses and must be answered.
	CallbackID string
	Action     action.Action
}

// IsCallback reports whether u is a button press.
func (u Update) IsCallback() bool { return u.CallbackID != "" }

// Target addresses a chat by id or a public channel by username.
type Target struct {
	ChatID   int64
	Username string
}

func Chat(id int64) Target { return Target{ChatID: id} }

// ParseTarget accepts a numeric chat id or a channel username with or
// without the leading "@". An empty string yields the zero Target.
func ParseTarget(s string) Target {
	s = strings.TrimSpace(s)
	if s == "" {
		return Target{}
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Target{ChatID: id}
	}
	return Target{Username: "@" + strings.TrimPrefix(s, "@")}
}

// IsZero reports whether t addresses nothing.
func (t Target) IsZero() bool { return t.ChatID == 0 && t.Username == "" }

func (t Target) String() string {
	if t.Username != "" {
		return t.Username
	}
	return strconv.FormatInt(t.ChatID, 10)
}

// Ref points at a sent message.
type Ref struct {
	Chat      Target
	MessageID int64
}

type Button struct {
	Text string
	Data string
}

// Keyboard is an inline keyboard, row by row.
type Keyboard [][]Button

// Row is a convenience for building one keyboard row.
func Row(buttons ...Button) []Button { return buttons }

// Message is an outbound message. Buttons is an inline keyboard; Reply a
// persistent reply keyboard of plain labels. RemoveReply hides any reply
// keyboard. Buttons takes precedence over the reply fields.
type Message struct {
	Text        string
	HTML        bool
	Buttons     Keyboard
	Reply       [][]string
	RemoveReply bool
}

// Gateway sends and edits messages. Implementations are safe for concurrent use.
type Gateway interface {
	Send(ctx context.Context, to Target, m Message) (Ref, error)
	// EditText replaces text and inline keyboard of ref; a nil Buttons removes it.
	EditText(ctx context.Context, ref Ref, m Message) error
	EditButtons(ctx context.Context, ref Ref, kb Keyboard) error
	Delete(ctx context.Context, ref Ref) error
	// Answer acknowledges a button press, optionally showing text.
	Answer(ctx context.Context, callbackID, text string, alert bool) error
}
