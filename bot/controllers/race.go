package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leonfunk08-oss/pitboss-bot/bot/models"
	"github.com/leonfunk08-oss/pitboss-bot/bot/platform"
	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/leonfunk08-oss/pitboss-bot/rsvp"
	"github.com/leonfunk08-oss/pitboss-bot/track"
)

// raceDateLayout is the league's local notation, e.g. "20.02.2026 20:00".
const raceDateLayout = "02.01.2006 15:04"

// raceZone pins announcements to league time (CET).
var raceZone = time.FixedZone("CET", 3600)

// voteStatuses maps button custom IDs back to attendance statuses.
var voteStatuses = map[string]rsvp.Status{
	"vote:accepted":  rsvp.StatusAccepted,
	"vote:declined":  rsvp.StatusDeclined,
	"vote:tentative": rsvp.StatusTentative,
}

// RaceController creates race announcements and applies attendance votes to
// them. Sessions live in memory, keyed by the announcement message; a session
// becomes unreachable when its message is deleted on the platform.
type RaceController struct {
	messenger platform.Messenger

	mu       sync.Mutex
	sessions map[string]*rsvp.Session
}

func NewRaceController(messenger platform.Messenger) *RaceController {
	return &RaceController{
		messenger: messenger,
		sessions:  make(map[string]*rsvp.Session),
	}
}

func (c *RaceController) RegisterRoutes(engine *gin.Engine, auth gin.HandlerFunc) {
	group := engine.Group("/webhook", auth)

	group.POST("/commands/race", c.announce)
	group.POST("/interactions/vote", c.vote)
}

// Session returns the session backing the given announcement message.
func (c *RaceController) Session(messageID string) (*rsvp.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.sessions[messageID]
	return s, ok
}

// announce godoc
// @Summary Announce a race night
// @Description Posts an announcement that collects attendance votes
// @Tags race
// @Accept json
// @Produce json
// @Param request body models.RaceRequest true "Race announcement"
// @Success 200 {object} models.RaceResponse
// @Failure 400 {object} models.ErrorResponse "Invalid date, time or track"
// @Failure 502 {object} models.ErrorResponse "Platform unreachable"
// @Router /webhook/commands/race [post]
func (c *RaceController) announce(g *gin.Context) {
	var req models.RaceRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ChannelID == "" || req.Track == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	startsAt, err := time.ParseInLocation(raceDateLayout, req.Date+" "+req.Time, raceZone)
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "date and time must look like 20.02.2026 20:00"})
		return
	}

	imageURL, _ := track.Image(req.Track)
	session := &rsvp.Session{
		Track:        req.Track,
		StartsAt:     startsAt,
		Info:         req.Info,
		ImageURL:     imageURL,
		CalendarLink: buildCalendarLink(req.Track, req.Info, startsAt),
	}

	msg, err := c.messenger.CreateMessage(g.Request.Context(), req.ChannelID, renderAnnouncement(session, session.Snapshot()))
	if err != nil {
		logging.Log.Errorf("RACE: failed to post announcement: %v", err)
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "could not post the announcement"})
		return
	}
	session.ChannelID = msg.ChannelID
	session.MessageID = msg.ID

	c.mu.Lock()
	c.sessions[msg.ID] = session
	c.mu.Unlock()

	logging.Log.Infof("RACE: announced %s at %s in channel %s", req.Track, startsAt, req.ChannelID)
	g.JSON(http.StatusOK, &models.RaceResponse{MessageID: msg.ID, Message: "race announced"})
}

// vote godoc
// @Summary Apply an attendance vote
// @Description Moves the voter into the chosen set and re-renders the announcement
// @Tags race
// @Accept json
// @Produce json
// @Param request body models.VoteRequest true "Vote interaction"
// @Success 200 {object} models.ReplyResponse
// @Failure 400 {object} models.ErrorResponse "Unknown button"
// @Failure 404 {object} models.ErrorResponse "No session for message"
// @Failure 502 {object} models.ErrorResponse "Platform unreachable"
// @Router /webhook/interactions/vote [post]
func (c *RaceController) vote(g *gin.Context) {
	var req models.VoteRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.MessageID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	status, ok := voteStatuses[req.CustomID]
	if !ok {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "unknown vote button"})
		return
	}

	c.mu.Lock()
	session, ok := c.sessions[req.MessageID]
	c.mu.Unlock()
	if !ok {
		logging.Log.Warnf("RSVP: vote for unknown announcement %s", req.MessageID)
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "announcement not found"})
		return
	}

	partition := session.Apply(req.User.Name, status)

	// Hard contract: the announcement is re-rendered after every vote.
	if err := c.messenger.EditMessage(g.Request.Context(), session.ChannelID, session.MessageID, renderAnnouncement(session, partition)); err != nil {
		logging.Log.Errorf("RSVP: failed to re-render announcement %s: %v", session.MessageID, err)
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: "could not update the announcement"})
		return
	}

	logging.Log.Infof("RSVP: %s is now %s for %s", req.User.Name, status, session.Track)
	g.JSON(http.StatusOK, &models.ReplyResponse{Message: fmt.Sprintf("you are marked as %s", status)})
}

// buildCalendarLink renders a Google Calendar template link for the race.
// Calendar entries are always two hours long.
func buildCalendarLink(trackName, info string, startsAt time.Time) string {
	start := startsAt.UTC()
	end := start.Add(2 * time.Hour)

	details := info
	if details == "" {
		details = "League Race"
	}

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", "Race "+trackName)
	params.Set("dates", start.Format("20060102T150405Z")+"/"+end.Format("20060102T150405Z"))
	params.Set("details", details)
	params.Set("location", trackName)

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}
