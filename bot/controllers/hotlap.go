package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonfunk08-oss/pitboss-bot/bot/models"
	"github.com/leonfunk08-oss/pitboss-bot/bot/platform"
	"github.com/leonfunk08-oss/pitboss-bot/laptime"
	"github.com/leonfunk08-oss/pitboss-bot/leaderboard"
	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/leonfunk08-oss/pitboss-bot/track"
)

// HotlapController accepts lap time submissions and keeps the bound
// leaderboard messages in sync with the store.
type HotlapController struct {
	store     *leaderboard.Store
	messenger platform.Messenger
}

func NewHotlapController(store *leaderboard.Store, messenger platform.Messenger) *HotlapController {
	return &HotlapController{
		store:     store,
		messenger: messenger,
	}
}

func (c *HotlapController) RegisterRoutes(engine *gin.Engine, auth gin.HandlerFunc) {
	group := engine.Group("/webhook", auth)

	group.POST("/commands/hotlap", c.submit)
}

// submit godoc
// @Summary Submit a lap time
// @Description Records the lap if it beats the user's personal best and refreshes the track's leaderboard message
// @Tags hotlap
// @Accept json
// @Produce json
// @Param request body models.HotlapRequest true "Lap submission"
// @Success 200 {object} models.ReplyResponse
// @Failure 400 {object} models.ErrorResponse "Malformed lap time"
// @Failure 404 {object} models.ErrorResponse "Unknown track"
// @Failure 500 {object} models.ErrorResponse "Store failure"
// @Router /webhook/commands/hotlap [post]
func (c *HotlapController) submit(g *gin.Context) {
	var req models.HotlapRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Track == "" || req.Time == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	duration, err := laptime.Parse(req.Time)
	if err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.store.Submit(g.Request.Context(), req.Track, req.User.Name, duration)
	if err != nil {
		if errors.Is(err, track.ErrUnknownTrack) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("unknown track: %s", req.Track)})
			return
		}
		logging.Log.Errorf("HOTLAP: submit failed for %s/%s: %v", req.Track, req.User.Name, err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save lap time"})
		return
	}

	switch result.Outcome {
	case leaderboard.OutcomeNotImproved:
		g.JSON(http.StatusOK, &models.ReplyResponse{
			Message: fmt.Sprintf("not an improvement, your best on %s stays %s", result.Track, laptime.Format(result.Best)),
		})
		return
	case leaderboard.OutcomeRecorded:
		logging.Log.Infof("HOTLAP: %s set %s on %s", req.User.Name, laptime.Format(result.Best), result.Track)
	case leaderboard.OutcomeImproved:
		logging.Log.Infof("HOTLAP: %s improved %s -> %s on %s",
			req.User.Name, laptime.Format(result.Previous), laptime.Format(result.Best), result.Track)
	}

	g.JSON(http.StatusOK, &models.ReplyResponse{Message: c.refreshBoard(g, result)})
}

// refreshBoard re-renders the bound leaderboard message after a mutating
// submission and composes the user-facing reply. A missing binding is
// reported, never silently dropped.
func (c *HotlapController) refreshBoard(g *gin.Context, result leaderboard.Result) string {
	reply := fmt.Sprintf("personal best on %s recorded: %s", result.Track, laptime.Format(result.Best))
	if result.Outcome == leaderboard.OutcomeImproved {
		reply = fmt.Sprintf("improved your best on %s from %s to %s",
			result.Track, laptime.Format(result.Previous), laptime.Format(result.Best))
	}

	binding, ok := c.store.Binding(result.Track)
	if !ok {
		logging.Log.Warnf("HOTLAP: %v: %s", leaderboard.ErrBindingMissing, result.Track)
		return reply + ", but no leaderboard is set up for this track yet"
	}

	err := c.messenger.EditMessage(g.Request.Context(), binding.ChannelID, binding.MessageID,
		renderBoard(result.Track, c.store.Rank(result.Track)))
	if err != nil {
		logging.Log.Errorf("HOTLAP: failed to refresh leaderboard for %s: %v", result.Track, err)
		return reply + ", but refreshing the leaderboard message failed"
	}
	return reply
}
