package bot

import (
	"sync"

	"github.com/spf13/viper"

	"github.com/leonfunk08-oss/pitboss-bot/logging"
)

type Config struct {
	ServerConfig
	PlatformConfig
	StorageConfig
	ReconcileConfig
}

type ServerConfig struct {
	Port int
}

type PlatformConfig struct {
	BaseURL      string
	Token        string
	BotID        string
	WebhookToken string
}

type StorageConfig struct {
	Path string
}

// ReconcileConfig says where to rebuild leaderboard bindings from at startup.
// An empty ChannelID disables reconciliation.
type ReconcileConfig struct {
	ChannelID    string
	HistoryLimit int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		ServerConfig: ServerConfig{
			Port: getIntOrDefault("server.port", 8080),
		},
		PlatformConfig: PlatformConfig{
			BaseURL:      viper.GetString("platform.baseURL"),
			Token:        viper.GetString("platform.token"),
			BotID:        viper.GetString("platform.botID"),
			WebhookToken: viper.GetString("platform.webhookToken"),
		},
		StorageConfig: StorageConfig{
			Path: getStringOrDefault("storage.path", "./pitboss.json"),
		},
		ReconcileConfig: ReconcileConfig{
			ChannelID:    viper.GetString("reconcile.channelID"),
			HistoryLimit: getIntOrDefault("reconcile.historyLimit", 100),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getStringOrDefault(name string, def string) string {
	if viper.IsSet(name) {
		v := viper.GetString(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
