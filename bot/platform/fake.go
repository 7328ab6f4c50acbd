package platform

import (
	"context"
	"fmt"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Fake is an in-memory Messenger for tests. Messages are kept per channel in
// send order; History returns them newest first like the real API. Setting
// Err makes every call fail with it.
type Fake struct {
	SelfID string
	Err    error

	mu       sync.Mutex
	channels map[string][]*Message
}

func NewFake(selfID string) *Fake {
	return &Fake{
		SelfID:   selfID,
		channels: make(map[string][]*Message),
	}
}

func (f *Fake) CreateMessage(_ context.Context, channelID string, out OutgoingMessage) (*Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, err
	}
	msg := &Message{
		ID:         id,
		ChannelID:  channelID,
		AuthorID:   f.SelfID,
		Embed:      out.Embed,
		Components: out.Components,
	}
	f.channels[channelID] = append(f.channels[channelID], msg)
	return msg, nil
}

func (f *Fake) EditMessage(_ context.Context, channelID, messageID string, out OutgoingMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}

	for _, msg := range f.channels[channelID] {
		if msg.ID == messageID {
			msg.Embed = out.Embed
			msg.Components = out.Components
			return nil
		}
	}
	return fmt.Errorf("%w: message %s not found", ErrUnavailable, messageID)
}

func (f *Fake) DeleteMessage(_ context.Context, channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return f.Err
	}

	msgs := f.channels[channelID]
	for i, msg := range msgs {
		if msg.ID == messageID {
			f.channels[channelID] = append(msgs[:i], msgs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: message %s not found", ErrUnavailable, messageID)
}

func (f *Fake) GetMessage(_ context.Context, channelID, messageID string) (*Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	for _, msg := range f.channels[channelID] {
		if msg.ID == messageID {
			copied := *msg
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: message %s not found", ErrUnavailable, messageID)
}

func (f *Fake) History(_ context.Context, channelID string, limit int) ([]*Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Err != nil {
		return nil, f.Err
	}

	msgs := f.channels[channelID]
	out := make([]*Message, 0, limit)
	for i := len(msgs) - 1; i >= 0 && len(out) < limit; i-- {
		copied := *msgs[i]
		out = append(out, &copied)
	}
	return out, nil
}
