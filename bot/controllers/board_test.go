package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonfunk08-oss/pitboss-bot/bot/models"
	"github.com/leonfunk08-oss/pitboss-bot/track"
)

func TestShowLeaderboard(t *testing.T) {
	f := setupControllers(t)
	f.hotlap(t, "userA", "monza", "1:47.221")

	res := f.post(t, "/webhook/commands/leaderboard", models.BoardRequest{
		ChannelID: "paddock",
		Track:     "Monza",
	})
	require.Equal(t, http.StatusOK, res.Code)

	var reply models.ReplyResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &reply))
	assert.Contains(t, reply.Message, "🏆 Monza Hotlap Leaderboard")
	assert.Contains(t, reply.Message, "🥇 `1:47.221` userA")
}

func TestShowLeaderboardEmptyTrack(t *testing.T) {
	f := setupControllers(t)

	res := f.post(t, "/webhook/commands/leaderboard", models.BoardRequest{
		ChannelID: "paddock",
		Track:     "imola",
	})
	require.Equal(t, http.StatusOK, res.Code)

	var reply models.ReplyResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &reply))
	assert.Contains(t, reply.Message, "No times set yet")
}

func TestShowLeaderboardUnknownTrack(t *testing.T) {
	f := setupControllers(t)

	res := f.post(t, "/webhook/commands/leaderboard", models.BoardRequest{
		ChannelID: "paddock",
		Track:     "atlantis",
	})
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestSetupBindsTrackToMessage(t *testing.T) {
	f := setupControllers(t)

	msgID := f.setupBoard(t, "boards", "spa")

	ref, ok := f.store.Binding("spa francorchamps")
	require.True(t, ok)
	assert.Equal(t, msgID, ref.MessageID)

	msg := f.message(t, "boards", msgID)
	assert.Equal(t, "🏆 Spa Francorchamps Hotlap Leaderboard", msg.Embed.Title)
	assert.Contains(t, msg.Embed.Description, "No times set yet")
}

func TestSetupReplacesOldBoardMessage(t *testing.T) {
	f := setupControllers(t)

	oldID := f.setupBoard(t, "boards", "monza")
	newID := f.setupBoard(t, "boards", "monza")
	require.NotEqual(t, oldID, newID)

	ref, ok := f.store.Binding("monza")
	require.True(t, ok)
	assert.Equal(t, newID, ref.MessageID)

	// The replaced message was cleaned up.
	_, err := f.fake.GetMessage(context.Background(), "boards", oldID)
	assert.Error(t, err)
}

func TestSetupUnknownTrack(t *testing.T) {
	f := setupControllers(t)

	res := f.post(t, "/webhook/commands/leaderboard/setup", models.BoardRequest{
		ChannelID: "boards",
		Track:     "atlantis",
	})
	assert.Equal(t, http.StatusNotFound, res.Code)
}

func TestSetupAllCoversCatalog(t *testing.T) {
	f := setupControllers(t)

	res := f.post(t, "/webhook/commands/leaderboard/setup-all", models.BoardSetupAllRequest{
		ChannelID: "boards",
		User:      models.User{ID: "1", Name: "steward"},
	})
	require.Equal(t, http.StatusOK, res.Code)

	var boards []models.BoardSetupResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &boards))
	require.Len(t, boards, len(track.Keys()))

	for i, key := range track.Keys() {
		assert.Equal(t, string(key), boards[i].Track)

		ref, ok := f.store.Binding(key)
		require.True(t, ok)
		assert.Equal(t, boards[i].MessageID, ref.MessageID)
	}
}
