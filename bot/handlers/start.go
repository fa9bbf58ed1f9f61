package handlers

import (
	"fmt"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
)

func StartHandler(bot *gotgbot.Bot, ctx *ext.Context) error {
	text := fmt.Sprintf(
		"send me a reddit link and I'll reply with its media.\n"+
			"I also work inline: <code>@%s link</code>",
		bot.Username,
	)
	_, err := ctx.EffectiveMessage.Reply(bot, text, &gotgbot.SendMessageOpts{
		ParseMode: gotgbot.ParseModeHTML,
	})
	return err
}
