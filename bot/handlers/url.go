package handlers

import (
	"context"
	"time"

	"unreddit/bot/core"
	"unreddit/loaders/reddit"
	"unreddit/util"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// the loaders share one pooled session; each update gets its own
// goroutine from the dispatcher, the session is only ever read
var redditLoader = reddit.New(util.GetHTTPSession())

const resolveTimeout = time.Minute

func URLFilter(msg *gotgbot.Message) bool {
	return message.Text(msg) &&
		!message.Command(msg) &&
		reddit.URLPattern.MatchString(msg.Text)
}

// URLHandler resolves every reddit link of the message independently:
// an unclassifiable or failing link never blocks replies for the rest.
func URLHandler(bot *gotgbot.Bot, ctx *ext.Context) error {
	msg := ctx.EffectiveMessage
	for _, rawURL := range util.FindURLs(msg.Text) {
		if !reddit.URLPattern.MatchString(rawURL) {
			continue
		}

		taskCtx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		content, metadata, err := redditLoader.Load(taskCtx, rawURL)
		cancel()
		if err != nil {
			if errors.Is(err, util.ErrMediaNotFound) {
				// nothing embeddable, leave the link alone
				continue
			}
			zap.S().Errorf("failed to resolve %s: %v", rawURL, err)
			continue
		}

		if err := core.SendReply(bot, msg, content, metadata); err != nil {
			zap.S().Errorf("failed to reply for %s: %v", rawURL, err)
		}
	}
	return nil
}
