// @title PitBoss Bot Webhook API
// @version 1.0
// @description Race announcements, attendance voting and hotlap leaderboards for the league

// @securityDefinitions.apikey WebhookToken
// @in header
// @name x-webhook-token
package main

import (
	_ "github.com/leonfunk08-oss/pitboss-bot/docs"

	"github.com/leonfunk08-oss/pitboss-bot/bot"
	"github.com/leonfunk08-oss/pitboss-bot/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BootstrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := bot.ReadConfig()

	// Start the service
	service := bot.NewServer(config)
	service.Start()
}
