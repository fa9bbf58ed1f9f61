package models

type EnvConfig struct {
	BotAPIURL         string
	BotToken          string
	ConcurrentUpdates int

	RedditAPIURL  string
	ImgurAPIURL   string
	ImgurClientID string
	GfycatAPIURL  string

	LogLevel            string
	LogDispatcherErrors bool
}
