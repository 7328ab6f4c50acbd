package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonfunk08-oss/pitboss-bot/logging"
)

func TestClientCreateMessage(t *testing.T) {
	logging.Log = logrus.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/channels/races/messages", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var out OutgoingMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&out))
		assert.Equal(t, "hello", out.Embed.Title)

		json.NewEncoder(w).Encode(Message{ID: "m1", ChannelID: "races", AuthorID: "bot", Embed: out.Embed})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	msg, err := c.CreateMessage(context.Background(), "races", OutgoingMessage{Embed: Embed{Title: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "hello", msg.Embed.Title)
}

func TestClientHistory(t *testing.T) {
	logging.Log = logrus.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/channels/races/messages", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		json.NewEncoder(w).Encode([]*Message{
			{ID: "m2", ChannelID: "races"},
			{ID: "m1", ChannelID: "races"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	msgs, err := c.History(context.Background(), "races", 25)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m2", msgs[0].ID)
}

func TestClientSurfacesAPIFailures(t *testing.T) {
	logging.Log = logrus.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	err := c.DeleteMessage(context.Background(), "races", "m1")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClientSurfacesTransportFailures(t *testing.T) {
	logging.Log = logrus.New()

	c := NewClient("http://127.0.0.1:1", "secret")
	_, err := c.GetMessage(context.Background(), "races", "m1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
