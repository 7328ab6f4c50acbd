package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leonfunk08-oss/pitboss-bot/bot/models"
	"github.com/leonfunk08-oss/pitboss-bot/bot/platform"
	"github.com/leonfunk08-oss/pitboss-bot/leaderboard"
	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/leonfunk08-oss/pitboss-bot/track"
)

// BoardController shows leaderboards and manages the messages they are
// rendered in.
type BoardController struct {
	store     *leaderboard.Store
	messenger platform.Messenger
}

func NewBoardController(store *leaderboard.Store, messenger platform.Messenger) *BoardController {
	return &BoardController{
		store:     store,
		messenger: messenger,
	}
}

func (c *BoardController) RegisterRoutes(engine *gin.Engine, auth gin.HandlerFunc) {
	group := engine.Group("/webhook", auth)

	group.POST("/commands/leaderboard", c.show)
	group.POST("/commands/leaderboard/setup", c.setup)
	group.POST("/commands/leaderboard/setup-all", c.setupAll)
}

// show godoc
// @Summary Show a track's leaderboard
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param request body models.BoardRequest true "Track to show"
// @Success 200 {object} models.ReplyResponse
// @Failure 404 {object} models.ErrorResponse "Unknown track"
// @Router /webhook/commands/leaderboard [post]
func (c *BoardController) show(g *gin.Context) {
	var req models.BoardRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Track == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	key, err := track.Resolve(req.Track)
	if err != nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("unknown track: %s", req.Track)})
		return
	}

	reply := leaderboard.BoardTitle(key) + "\n" + boardLines(c.store.Rank(key))
	g.JSON(http.StatusOK, &models.ReplyResponse{Message: reply})
}

// setup godoc
// @Summary Create the leaderboard message for a track
// @Description Posts a leaderboard message in the channel and binds the track to it, replacing any prior binding
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param request body models.BoardRequest true "Track to set up"
// @Success 200 {object} models.BoardSetupResponse
// @Failure 404 {object} models.ErrorResponse "Unknown track"
// @Failure 502 {object} models.ErrorResponse "Platform unreachable"
// @Router /webhook/commands/leaderboard/setup [post]
func (c *BoardController) setup(g *gin.Context) {
	var req models.BoardRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ChannelID == "" || req.Track == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	key, err := track.Resolve(req.Track)
	if err != nil {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: fmt.Sprintf("unknown track: %s", req.Track)})
		return
	}

	messageID, err := c.bindBoard(g, key, req.ChannelID)
	if err != nil {
		g.JSON(http.StatusBadGateway, &models.ErrorResponse{Error: err.Error()})
		return
	}

	logging.Log.Infof("BOARD: set up leaderboard for %s in channel %s", key, req.ChannelID)
	g.JSON(http.StatusOK, &models.BoardSetupResponse{Track: string(key), MessageID: messageID})
}

// setupAll godoc
// @Summary Create leaderboard messages for every catalog track
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param request body models.BoardSetupAllRequest true "Channel to post in"
// @Success 200 {array} models.BoardSetupResponse
// @Router /webhook/commands/leaderboard/setup-all [post]
func (c *BoardController) setupAll(g *gin.Context) {
	var req models.BoardSetupAllRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.ChannelID == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	boards := make([]models.BoardSetupResponse, 0, len(track.Keys()))
	for _, key := range track.Keys() {
		messageID, err := c.bindBoard(g, key, req.ChannelID)
		if err != nil {
			logging.Log.Errorf("BOARD: bulk setup failed for %s: %v", key, err)
			continue
		}
		boards = append(boards, models.BoardSetupResponse{Track: string(key), MessageID: messageID})
	}

	logging.Log.Infof("BOARD: bulk setup created %d leaderboards in channel %s", len(boards), req.ChannelID)
	g.JSON(http.StatusOK, boards)
}

// bindBoard posts a fresh leaderboard message and rebinds the track to it.
// The message replaced by the new binding is deleted best-effort: a platform
// failure there is logged and swallowed, never propagated.
func (c *BoardController) bindBoard(g *gin.Context, key track.Key, channelID string) (string, error) {
	prev, hadPrev := c.store.Binding(key)

	msg, err := c.messenger.CreateMessage(g.Request.Context(), channelID, renderBoard(key, c.store.Rank(key)))
	if err != nil {
		logging.Log.Errorf("BOARD: failed to post leaderboard for %s: %v", key, err)
		return "", errors.New("could not post the leaderboard message")
	}

	if err := c.store.Bind(g.Request.Context(), key, msg.ChannelID, msg.ID); err != nil {
		logging.Log.Errorf("BOARD: failed to persist binding for %s: %v", key, err)
		return "", errors.New("could not save the leaderboard binding")
	}

	if hadPrev {
		if err := c.messenger.DeleteMessage(g.Request.Context(), prev.ChannelID, prev.MessageID); err != nil {
			logging.Log.Warnf("BOARD: could not delete old leaderboard message for %s: %v", key, err)
		}
	}
	return msg.ID, nil
}
