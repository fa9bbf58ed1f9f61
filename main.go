package main

import (
	"unreddit/bot"
	"unreddit/config"
	"unreddit/logger"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// load environment variables and configurations
	config.Load()
	logger.SetLevel(config.Env.LogLevel)

	// setup bot client
	go bot.Start()

	select {}
}
