package handlers

import (
	"context"
	"strings"

	"unreddit/bot/core"
	"unreddit/loaders/reddit"
	"unreddit/util"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// InlineQueryHandler answers an inline query from the first reddit link
// it can resolve. Inline answers are best effort: failures are logged
// and the query is simply left unanswered.
func InlineQueryHandler(bot *gotgbot.Bot, ctx *ext.Context) error {
	query := strings.TrimSpace(ctx.InlineQuery.Query)
	for _, rawURL := range util.FindURLs(query) {
		if !reddit.URLPattern.MatchString(rawURL) {
			continue
		}

		taskCtx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
		content, metadata, err := redditLoader.Load(taskCtx, rawURL)
		cancel()
		if err != nil {
			if !errors.Is(err, util.ErrMediaNotFound) {
				zap.S().Errorf("failed to resolve %s: %v", rawURL, err)
			}
			continue
		}

		return core.AnswerInline(bot, ctx.InlineQuery, content, metadata)
	}
	return nil
}
