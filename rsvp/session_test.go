package rsvp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMovesVoterBetweenSets(t *testing.T) {
	s := &Session{Track: "monza"}

	p := s.Apply("u1", StatusAccepted)
	assert.Equal(t, []string{"u1"}, p.Accepted)
	assert.Empty(t, p.Declined)
	assert.Empty(t, p.Tentative)

	p = s.Apply("u1", StatusDeclined)
	assert.Empty(t, p.Accepted)
	assert.Equal(t, []string{"u1"}, p.Declined)
	assert.Empty(t, p.Tentative)
}

func TestApplyIsIdempotent(t *testing.T) {
	s := &Session{Track: "monza"}

	s.Apply("u1", StatusTentative)
	s.Apply("u2", StatusTentative)
	p := s.Apply("u1", StatusTentative)

	// Re-voting does not move u1 to the back of the list.
	assert.Equal(t, []string{"u1", "u2"}, p.Tentative)
}

func TestApplyKeepsInsertionOrder(t *testing.T) {
	s := &Session{Track: "monza"}

	s.Apply("u1", StatusAccepted)
	s.Apply("u2", StatusAccepted)
	s.Apply("u3", StatusAccepted)
	p := s.Apply("u2", StatusDeclined)

	assert.Equal(t, []string{"u1", "u3"}, p.Accepted)
	assert.Equal(t, []string{"u2"}, p.Declined)
}

func TestDisjointnessUnderArbitrarySequences(t *testing.T) {
	s := &Session{Track: "monza"}
	voters := []string{"u1", "u2", "u3", "u4"}

	var p Partition
	for i := 0; i < 100; i++ {
		voter := voters[i%len(voters)]
		status := Statuses[(i*7)%len(Statuses)]
		p = s.Apply(voter, status)
		requireDisjoint(t, p)
	}

	total := len(p.Accepted) + len(p.Declined) + len(p.Tentative)
	assert.Equal(t, len(voters), total)
}

func requireDisjoint(t *testing.T, p Partition) {
	t.Helper()

	seen := make(map[string]string)
	for _, set := range []struct {
		name    string
		members []string
	}{
		{"accepted", p.Accepted},
		{"declined", p.Declined},
		{"tentative", p.Tentative},
	} {
		for _, voter := range set.members {
			if prior, ok := seen[voter]; ok {
				require.Fail(t, fmt.Sprintf("voter %s in both %s and %s", voter, prior, set.name))
			}
			seen[voter] = set.name
		}
	}
}

func TestSnapshotReturnsCopies(t *testing.T) {
	s := &Session{Track: "monza"}
	s.Apply("u1", StatusAccepted)

	p := s.Snapshot()
	p.Accepted[0] = "mutated"

	assert.Equal(t, []string{"u1"}, s.Snapshot().Accepted)
}
