// Package leaderboard keeps per-track personal bests and the bindings between
// tracks and the messages rendering their rankings.
package leaderboard

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/leonfunk08-oss/pitboss-bot/storage"
	"github.com/leonfunk08-oss/pitboss-bot/track"
)

// Outcome classifies what a lap submission did to the store.
type Outcome string

const (
	// OutcomeRecorded means the user had no prior time on the track.
	OutcomeRecorded Outcome = "recorded"
	// OutcomeImproved means the submission beat the user's prior best.
	OutcomeImproved Outcome = "improved"
	// OutcomeNotImproved means the prior best stands; nothing was written.
	OutcomeNotImproved Outcome = "not_improved"
)

// Result is the answer to one submission. Best is the user's best after the
// call; Previous is only set for OutcomeImproved.
type Result struct {
	Outcome  Outcome
	Track    track.Key
	Best     time.Duration
	Previous time.Duration
}

// Entry is one row of a ranking.
type Entry struct {
	User     string
	Duration time.Duration
}

type record struct {
	duration time.Duration
	seq      uint64
}

// Store owns the lap and binding tables. All mutations happen under one lock
// so a submission's compare and write cannot interleave with another for the
// same key, and every mutation is persisted in full before it is acknowledged.
type Store struct {
	docs storage.DocumentStorage

	mu       sync.Mutex
	laps     map[track.Key]map[string]record
	bindings map[track.Key]storage.MessageRef
	nextSeq  uint64
}

// NewStore loads the persisted document and builds the in-memory tables.
// Tie-break sequence numbers are reassigned at load in (duration, user) order
// so rankings stay deterministic across restarts.
func NewStore(ctx context.Context, docs storage.DocumentStorage) (*Store, error) {
	doc, err := docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	s := &Store{
		docs:     docs,
		laps:     make(map[track.Key]map[string]record),
		bindings: make(map[track.Key]storage.MessageRef),
		nextSeq:  1,
	}

	tracks := make([]string, 0, len(doc.Laps))
	for t := range doc.Laps {
		tracks = append(tracks, t)
	}
	sort.Strings(tracks)

	for _, t := range tracks {
		users := make([]string, 0, len(doc.Laps[t]))
		for u := range doc.Laps[t] {
			users = append(users, u)
		}
		sort.Slice(users, func(i, j int) bool {
			di, dj := doc.Laps[t][users[i]], doc.Laps[t][users[j]]
			if di != dj {
				return di < dj
			}
			return users[i] < users[j]
		})

		table := make(map[string]record, len(users))
		for _, u := range users {
			table[u] = record{
				duration: time.Duration(doc.Laps[t][u]) * time.Millisecond,
				seq:      s.nextSeq,
			}
			s.nextSeq++
		}
		s.laps[track.Key(t)] = table
	}

	for t, ref := range doc.Bindings {
		s.bindings[track.Key(t)] = ref
	}

	logging.Log.Infof("BOARD: loaded %d tracks, %d bindings", len(s.laps), len(s.bindings))
	return s, nil
}

// Submit records a lap for (trackName, user) if it strictly beats the stored
// best. The track is resolved first; an unresolvable name returns
// track.ErrUnknownTrack and touches nothing. Mutations are durably persisted
// before the result is returned, and rolled back if persisting fails.
func (s *Store) Submit(ctx context.Context, trackName, user string, d time.Duration) (Result, error) {
	key, err := track.Resolve(trackName)
	if err != nil {
		return Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	table, ok := s.laps[key]
	if !ok {
		table = make(map[string]record)
		s.laps[key] = table
	}

	prev, had := table[user]
	if had && d >= prev.duration {
		return Result{Outcome: OutcomeNotImproved, Track: key, Best: prev.duration}, nil
	}

	seq := s.nextSeq
	if had {
		seq = prev.seq
	}
	table[user] = record{duration: d, seq: seq}

	if err := s.persistLocked(ctx); err != nil {
		if had {
			table[user] = prev
		} else {
			delete(table, user)
		}
		return Result{}, err
	}

	if !had {
		s.nextSeq++
		return Result{Outcome: OutcomeRecorded, Track: key, Best: d}, nil
	}
	return Result{Outcome: OutcomeImproved, Track: key, Best: d, Previous: prev.duration}, nil
}

// Best returns the stored personal best for (key, user).
func (s *Store) Best(key track.Key, user string) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.laps[key][user]
	return rec.duration, ok
}

// Rank returns the track's entries sorted ascending by duration, ties broken
// by submission order. Unknown or empty tracks yield an empty slice.
func (s *Store) Rank(key track.Key) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	type row struct {
		user string
		rec  record
	}

	table := s.laps[key]
	rows := make([]row, 0, len(table))
	for u, rec := range table {
		rows = append(rows, row{u, rec})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].rec.duration != rows[j].rec.duration {
			return rows[i].rec.duration < rows[j].rec.duration
		}
		return rows[i].rec.seq < rows[j].rec.seq
	})

	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{User: r.user, Duration: r.rec.duration})
	}
	return entries
}

// persistLocked rewrites the whole document. Callers hold s.mu.
func (s *Store) persistLocked(ctx context.Context) error {
	doc := storage.NewDocument()
	for t, table := range s.laps {
		if len(table) == 0 {
			continue
		}
		users := make(map[string]int64, len(table))
		for u, rec := range table {
			users[u] = rec.duration.Milliseconds()
		}
		doc.Laps[string(t)] = users
	}
	for t, ref := range s.bindings {
		doc.Bindings[string(t)] = ref
	}
	return s.docs.Save(ctx, doc)
}
