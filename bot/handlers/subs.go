package handlers

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"unreddit/config"
	"unreddit/util"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers/filters/message"
	"go.uber.org/zap"
)

var (
	subPattern        = regexp.MustCompile(`(?i)r/\w+`)
	subTriggerPattern = regexp.MustCompile(`(?i)(^|\s+)r/\w+`)
)

func SubsFilter(msg *gotgbot.Message) bool {
	return message.Text(msg) &&
		!message.Command(msg) &&
		subTriggerPattern.MatchString(msg.Text)
}

// SubsHandler turns bare r/name mentions into a list of links, keeping
// only the subreddits that actually answer on the listing endpoint.
func SubsHandler(bot *gotgbot.Bot, ctx *ext.Context) error {
	msg := ctx.EffectiveMessage

	seen := make(map[string]struct{})
	var links []string

	for _, sub := range subPattern.FindAllString(msg.Text, -1) {
		if _, ok := seen[sub]; ok {
			continue
		}
		seen[sub] = struct{}{}

		exists, err := subredditExists(sub)
		if err != nil {
			zap.S().Errorf("failed to check %s: %v", sub, err)
			return nil
		}
		if exists {
			links = append(links, fmt.Sprintf(
				"[%s](%s)", sub, util.RepathURL(config.Env.RedditAPIURL, sub),
			))
		}
	}

	if len(links) == 0 {
		return nil
	}
	_, err := msg.Reply(bot, strings.Join(links, "\n"), &gotgbot.SendMessageOpts{
		ParseMode: gotgbot.ParseModeMarkdown,
		LinkPreviewOptions: &gotgbot.LinkPreviewOptions{
			IsDisabled: true,
		},
	})
	return err
}

func subredditExists(sub string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	// private subreddits answer with a redirect, so don't follow it
	client := *util.GetHTTPSession()
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	listingURL := util.RepathURL(config.Env.RedditAPIURL, sub) + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listingURL, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", util.UserAgent)

	res, err := client.Do(req)
	if err != nil {
		return false, err
	}
	defer res.Body.Close()

	return res.StatusCode == http.StatusOK, nil
}
