package bot

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/leonfunk08-oss/pitboss-bot/bot/controllers"
	"github.com/leonfunk08-oss/pitboss-bot/bot/platform"
	"github.com/leonfunk08-oss/pitboss-bot/bot/transport"
	"github.com/leonfunk08-oss/pitboss-bot/leaderboard"
	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/leonfunk08-oss/pitboss-bot/storage"
)

type Server struct {
	config *Config
}

func NewServer(config *Config) *Server {
	return &Server{
		config: config,
	}
}

func (s *Server) Start() {
	r := transport.NewRouter(gin.DebugMode)
	ctx := context.Background()

	// Create storage
	docs := &storage.FileDocumentStorage{Path: s.config.StorageConfig.Path}
	store, err := leaderboard.NewStore(ctx, docs)
	if err != nil {
		logging.Log.Errorf("failed to load leaderboard store: %v", err)
		panic("failed to load leaderboard store")
	}

	messenger := platform.NewClient(s.config.BaseURL, s.config.Token)
	auth := transport.WebhookAuthMiddleware(s.config.WebhookToken)

	//Register controllers
	raceController := controllers.NewRaceController(messenger)
	raceController.RegisterRoutes(r, auth)
	hotlapController := controllers.NewHotlapController(store, messenger)
	hotlapController.RegisterRoutes(r, auth)
	boardController := controllers.NewBoardController(store, messenger)
	boardController.RegisterRoutes(r, auth)

	// Best-effort: rebuild leaderboard bindings from channel history. A dead
	// platform must not stop the bot from serving.
	s.reconcile(ctx, store, messenger)

	startLocal(r, s.config.Port)
}

func (s *Server) reconcile(ctx context.Context, store *leaderboard.Store, messenger platform.Messenger) {
	if s.config.ReconcileConfig.ChannelID == "" {
		logging.Log.Info("reconcile disabled, no channel configured")
		return
	}

	history, err := messenger.History(ctx, s.config.ReconcileConfig.ChannelID, s.config.HistoryLimit)
	if err != nil {
		logging.Log.Warnf("reconcile skipped, history fetch failed: %v", err)
		return
	}

	msgs := make([]leaderboard.HistoryMessage, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, leaderboard.HistoryMessage{
			ChannelID: m.ChannelID,
			MessageID: m.ID,
			AuthorID:  m.AuthorID,
			Title:     m.Embed.Title,
		})
	}

	n, err := store.Reconcile(ctx, s.config.BotID, msgs)
	if err != nil {
		logging.Log.Errorf("reconcile could not persist bindings: %v", err)
		return
	}
	logging.Log.Infof("reconciled %d leaderboard bindings from history", n)
}

// StartLocal starts a normal HTTP server on the configured port
func startLocal(engine *gin.Engine, port int) {
	logging.Log.Info(fmt.Sprintf("Starting server on http://localhost:%d", port))

	if err := engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		logging.Log.Fatalf("Failed to run server: %v", err)
	}
}
