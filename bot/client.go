package bot

import (
	"net/http"
	"time"

	"unreddit/config"

	"github.com/PaulSonOfLars/gotgbot/v2"
)

func NewBotClient() gotgbot.BotClient {
	return &gotgbot.BaseBotClient{
		Client: http.Client{},
		DefaultRequestOpts: &gotgbot.RequestOpts{
			Timeout: 30 * time.Second,
			APIURL:  config.Env.BotAPIURL,
		},
	}
}
