package bot

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonfunk08-oss/pitboss-bot/bot/platform"
	"github.com/leonfunk08-oss/pitboss-bot/leaderboard"
	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/leonfunk08-oss/pitboss-bot/storage"
)

func setupReconcileTest(t *testing.T) (*Server, *leaderboard.Store, *platform.Fake) {
	t.Helper()
	logging.Log = logrus.New()

	docs := &storage.FileDocumentStorage{Path: filepath.Join(t.TempDir(), "pitboss.json")}
	store, err := leaderboard.NewStore(context.Background(), docs)
	require.NoError(t, err)

	fake := platform.NewFake("bot-user")
	server := NewServer(&Config{
		PlatformConfig:  PlatformConfig{BotID: "bot-user"},
		ReconcileConfig: ReconcileConfig{ChannelID: "boards", HistoryLimit: 50},
	})
	return server, store, fake
}

func TestReconcileRebuildsBindingsAtStartup(t *testing.T) {
	server, store, fake := setupReconcileTest(t)
	ctx := context.Background()

	_, err := fake.CreateMessage(ctx, "boards", platform.OutgoingMessage{
		Embed: platform.Embed{Title: leaderboard.BoardTitle("monza")},
	})
	require.NoError(t, err)
	_, err = fake.CreateMessage(ctx, "boards", platform.OutgoingMessage{
		Embed: platform.Embed{Title: "🏁 Monza - Race Night"},
	})
	require.NoError(t, err)

	server.reconcile(ctx, store, fake)

	ref, ok := store.Binding("monza")
	require.True(t, ok)
	assert.Equal(t, "boards", ref.ChannelID)
}

func TestReconcileSurvivesUnreachablePlatform(t *testing.T) {
	server, store, fake := setupReconcileTest(t)
	fake.Err = errors.New("gateway down")

	// Must log and continue with no bindings, not fail startup.
	server.reconcile(context.Background(), store, fake)

	_, ok := store.Binding("monza")
	assert.False(t, ok)
}

func TestReconcileDisabledWithoutChannel(t *testing.T) {
	server, store, fake := setupReconcileTest(t)
	server.config.ReconcileConfig.ChannelID = ""

	server.reconcile(context.Background(), store, fake)

	_, ok := store.Binding("monza")
	assert.False(t, ok)
}
