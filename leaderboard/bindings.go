package leaderboard

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/leonfunk08-oss/pitboss-bot/storage"
	"github.com/leonfunk08-oss/pitboss-bot/track"
)

var ErrBindingMissing = errors.New("no leaderboard message bound for track")

const (
	boardTitlePrefix = "🏆 "
	boardTitleSuffix = " Hotlap Leaderboard"
)

var titleCaser = cases.Title(language.English)

// BoardTitle renders the message title for a track's leaderboard. TitleKey
// inverts it, so the two must stay symmetric for reconciliation to work.
func BoardTitle(key track.Key) string {
	return boardTitlePrefix + titleCaser.String(string(key)) + boardTitleSuffix
}

// TitleKey recovers the track key from a leaderboard message title. Titles
// without the decoration, or whose remainder is not a catalog track, yield
// ok=false.
func TitleKey(title string) (track.Key, bool) {
	if !strings.HasPrefix(title, boardTitlePrefix) || !strings.HasSuffix(title, boardTitleSuffix) {
		return "", false
	}
	name := strings.TrimSuffix(strings.TrimPrefix(title, boardTitlePrefix), boardTitleSuffix)
	key, err := track.Resolve(name)
	if err != nil {
		return "", false
	}
	return key, true
}

// HistoryMessage is the slice of a platform message that reconciliation needs.
type HistoryMessage struct {
	ChannelID string
	MessageID string
	AuthorID  string
	Title     string
}

// Bind points the track's leaderboard at the given message, replacing any
// prior binding, and persists the change before returning.
func (s *Store) Bind(ctx context.Context, key track.Key, channelID, messageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.bindings[key]
	s.bindings[key] = storage.MessageRef{ChannelID: channelID, MessageID: messageID}

	if err := s.persistLocked(ctx); err != nil {
		if had {
			s.bindings[key] = prev
		} else {
			delete(s.bindings, key)
		}
		return err
	}
	return nil
}

// Binding returns where the track's leaderboard is rendered, if anywhere.
func (s *Store) Binding(key track.Key) (storage.MessageRef, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.bindings[key]
	return ref, ok
}

// Reconcile rebuilds bindings from a window of channel history after a
// restart. Only messages authored by selfID whose title parses back to a
// catalog track count; history is expected newest-first, and the newest
// message per track wins. Rebuilt bindings overwrite whatever was loaded from
// the document. Running it twice over the same window is a no-op the second
// time.
func (s *Store) Reconcile(ctx context.Context, selfID string, history []HistoryMessage) (int, error) {
	seen := make(map[track.Key]bool)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for _, msg := range history {
		if msg.AuthorID != selfID {
			continue
		}
		key, ok := TitleKey(msg.Title)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true

		ref := storage.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.MessageID}
		if s.bindings[key] != ref {
			s.bindings[key] = ref
			changed = true
		}
		logging.Log.Debugf("BOARD: reconciled binding for %s -> %s/%s", key, ref.ChannelID, ref.MessageID)
	}

	if changed {
		if err := s.persistLocked(ctx); err != nil {
			return len(seen), err
		}
	}
	return len(seen), nil
}
