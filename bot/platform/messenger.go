// Package platform is the boundary to the chat platform: structured messages
// out, identities and message history in. Everything the rest of the bot
// knows about the platform goes through the Messenger interface.
package platform

import (
	"context"
	"errors"
)

// ErrUnavailable wraps every transport or API failure talking to the
// platform. Callers decide whether that aborts the operation or is swallowed
// (best-effort cleanup).
var ErrUnavailable = errors.New("chat platform unavailable")

// Embed is the structured content of a rendered message.
type Embed struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Footer      string  `json:"footer,omitempty"`
}

type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Component is an interactive control attached to a message. The platform
// echoes CustomID back in interaction webhooks.
type Component struct {
	CustomID string `json:"customId"`
	Label    string `json:"label"`
	Emoji    string `json:"emoji,omitempty"`
	Style    string `json:"style,omitempty"`
}

// OutgoingMessage is what the bot sends or edits.
type OutgoingMessage struct {
	Embed      Embed       `json:"embed"`
	Components []Component `json:"components,omitempty"`
}

// Message is a message as the platform reports it.
type Message struct {
	ID         string      `json:"id"`
	ChannelID  string      `json:"channelId"`
	AuthorID   string      `json:"authorId"`
	Embed      Embed       `json:"embed"`
	Components []Component `json:"components,omitempty"`
}

// Messenger is the platform's message API. History returns up to limit
// messages, newest first.
type Messenger interface {
	CreateMessage(ctx context.Context, channelID string, out OutgoingMessage) (*Message, error)
	EditMessage(ctx context.Context, channelID, messageID string, out OutgoingMessage) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	GetMessage(ctx context.Context, channelID, messageID string) (*Message, error)
	History(ctx context.Context, channelID string, limit int) ([]*Message, error)
}
