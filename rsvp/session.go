// Package rsvp holds the attendance state behind a race announcement.
package rsvp

import (
	"sync"
	"time"
)

// Status is one of the three attendance answers a voter can give.
type Status string

const (
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusTentative Status = "tentative"
)

// Statuses lists the three answers in render order.
var Statuses = []Status{StatusAccepted, StatusDeclined, StatusTentative}

// Partition is a snapshot of the three voter sets. The slices are copies and
// keep insertion order; a voter appears in at most one of them.
type Partition struct {
	Accepted  []string
	Declined  []string
	Tentative []string
}

// Session is the state of one race announcement: when the race starts, what
// the announcement says, and who has voted what so far. A session lives as
// long as the message backing it.
type Session struct {
	Track        string
	StartsAt     time.Time
	Info         string
	ImageURL     string
	CalendarLink string

	// Channel and message backing the announcement, set once on send.
	ChannelID string
	MessageID string

	mu        sync.Mutex
	accepted  []string
	declined  []string
	tentative []string
}

// Apply moves voter into the set for status, removing it from the other two.
// Re-voting the same status changes nothing but still returns a fresh
// snapshot: the caller must re-render the announcement after every call.
func (s *Session) Apply(voter string, status Status) Partition {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status != StatusAccepted {
		s.accepted = remove(s.accepted, voter)
	}
	if status != StatusDeclined {
		s.declined = remove(s.declined, voter)
	}
	if status != StatusTentative {
		s.tentative = remove(s.tentative, voter)
	}

	switch status {
	case StatusAccepted:
		s.accepted = insert(s.accepted, voter)
	case StatusDeclined:
		s.declined = insert(s.declined, voter)
	case StatusTentative:
		s.tentative = insert(s.tentative, voter)
	}

	return s.snapshotLocked()
}

// Snapshot returns the current tri-partition without changing it.
func (s *Session) Snapshot() Partition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Partition {
	return Partition{
		Accepted:  append([]string(nil), s.accepted...),
		Declined:  append([]string(nil), s.declined...),
		Tentative: append([]string(nil), s.tentative...),
	}
}

func insert(set []string, voter string) []string {
	for _, v := range set {
		if v == voter {
			return set
		}
	}
	return append(set, voter)
}

func remove(set []string, voter string) []string {
	for i, v := range set {
		if v == voter {
			return append(set[:i], set[i+1:]...)
		}
	}
	return set
}
