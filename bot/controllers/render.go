package controllers

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leonfunk08-oss/pitboss-bot/bot/platform"
	"github.com/leonfunk08-oss/pitboss-bot/laptime"
	"github.com/leonfunk08-oss/pitboss-bot/leaderboard"
	"github.com/leonfunk08-oss/pitboss-bot/rsvp"
	"github.com/leonfunk08-oss/pitboss-bot/track"
)

const embedFooter = "PitBoss Systems"

var titleCaser = cases.Title(language.English)

var voteButtons = []platform.Component{
	{CustomID: "vote:accepted", Label: "Accepted", Emoji: "✅", Style: "success"},
	{CustomID: "vote:declined", Label: "Declined", Emoji: "❌", Style: "danger"},
	{CustomID: "vote:tentative", Label: "Tentative", Emoji: "❓", Style: "secondary"},
}

// renderAnnouncement builds the race announcement embed from the session and
// a snapshot of its vote sets.
func renderAnnouncement(s *rsvp.Session, p rsvp.Partition) platform.OutgoingMessage {
	ts := s.StartsAt.Unix()

	info := s.Info
	if info == "" {
		info = "-"
	}

	embed := platform.Embed{
		Title: fmt.Sprintf("🏁 %s - Race Night", titleCaser.String(s.Track)),
		Description: "Please vote if you are racing:\n\n" +
			fmt.Sprintf("📅 Race Time: <t:%d:F>\n", ts) +
			fmt.Sprintf("⏳ Countdown: <t:%d:R>\n", ts) +
			fmt.Sprintf("📆 [Add to Google Calendar](%s)\n\n", s.CalendarLink) +
			fmt.Sprintf("ℹ️ Info: %s\n​\n", info),
		ImageURL: s.ImageURL,
		Footer:   embedFooter,
		Fields: []platform.Field{
			{Name: "​", Value: "​"},
			voterField("🟢 Accepted", p.Accepted),
			voterField("🔴 Declined", p.Declined),
			voterField("🟡 Maybe", p.Tentative),
		},
	}

	return platform.OutgoingMessage{Embed: embed, Components: voteButtons}
}

func voterField(label string, voters []string) platform.Field {
	value := strings.Join(voters, "\n")
	if value == "" {
		value = "-"
	}
	return platform.Field{
		Name:  fmt.Sprintf("%s (%d)", label, len(voters)),
		Value: value,
	}
}

// renderBoard builds the leaderboard embed for a track from its ranking.
func renderBoard(key track.Key, entries []leaderboard.Entry) platform.OutgoingMessage {
	return platform.OutgoingMessage{
		Embed: platform.Embed{
			Title:       leaderboard.BoardTitle(key),
			Description: boardLines(entries),
			Footer:      embedFooter,
		},
	}
}

func boardLines(entries []leaderboard.Entry) string {
	if len(entries) == 0 {
		return "No times set yet. Post one with the hotlap command."
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var b strings.Builder
	for i, e := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		fmt.Fprintf(&b, "%s `%s` %s\n", rank, laptime.Format(e.Duration), e.User)
	}
	return b.String()
}
