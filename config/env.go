package config

import (
	"os"
	"strconv"

	"unreddit/models"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

func Load() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.S().Warnf("failed to load .env file: %v", err)
	}
	LoadEnv()
}

func LoadEnv() {
	if value := os.Getenv("BOT_TOKEN"); value != "" {
		Env.BotToken = value
	} else {
		zap.S().Fatal("BOT_TOKEN env is not set")
	}
	if value := os.Getenv("BOT_API_URL"); value != "" {
		Env.BotAPIURL = value
	} else {
		zap.S().Warnf("BOT_API_URL is not set, using default %s", Env.BotAPIURL)
	}
	if value := os.Getenv("CONCURRENT_UPDATES"); value != "" {
		if updates, err := strconv.Atoi(value); err == nil {
			Env.ConcurrentUpdates = updates
		} else {
			zap.S().Fatal("CONCURRENT_UPDATES env is not a valid integer")
		}
	}
	if value := os.Getenv("REDDIT_API_URL"); value != "" {
		Env.RedditAPIURL = value
	}
	if value := os.Getenv("IMGUR_API_URL"); value != "" {
		Env.ImgurAPIURL = value
	}
	if value := os.Getenv("IMGUR_CLIENT_ID"); value != "" {
		Env.ImgurClientID = value
	} else {
		zap.S().Warn("IMGUR_CLIENT_ID is not set, imgur links may fail to resolve")
	}
	if value := os.Getenv("GFYCAT_API_URL"); value != "" {
		Env.GfycatAPIURL = value
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	if value := os.Getenv("LOG_DISPATCHER_ERRORS"); value != "" {
		if logErrors, err := strconv.ParseBool(value); err == nil {
			Env.LogDispatcherErrors = logErrors
		} else {
			zap.S().Fatal("LOG_DISPATCHER_ERRORS env is not a valid boolean")
		}
	}
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		BotAPIURL:         gotgbot.DefaultAPIURL,
		ConcurrentUpdates: 50,

		RedditAPIURL: "https://www.reddit.com",
		ImgurAPIURL:  "https://api.imgur.com",
		GfycatAPIURL: "https://api.gfycat.com",

		LogLevel: "info",
	}
}
