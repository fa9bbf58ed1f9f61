package core

import (
	"net/http"
	"strings"

	"unreddit/enums"
	"unreddit/models"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SendReply renders a resolved content/metadata pair as a reply to msg.
// A Telegram "bad request" on a media send degrades to the embed
// fallback text with the original keyboard; the same failure on a text
// send is only logged. Anything else propagates to the dispatcher.
func SendReply(
	bot *gotgbot.Bot,
	msg *gotgbot.Message,
	content *models.Content,
	metadata models.Metadata,
) error {
	keyboard := Keyboard(metadata)

	err := sendByKind(bot, msg, content, keyboard)
	if err == nil {
		return nil
	}

	var tgErr *gotgbot.TelegramError
	if !errors.As(err, &tgErr) || tgErr.Code != http.StatusBadRequest {
		return err
	}

	if !content.Kind.IsMedia() {
		zap.S().Warnf("message %q has failed to send: %v", content.Body, err)
		return nil
	}

	opts := &gotgbot.SendMessageOpts{ParseMode: gotgbot.ParseModeHTML}
	if keyboard != nil {
		opts.ReplyMarkup = *keyboard
	}
	if _, sendErr := msg.Reply(bot, content.EmbedFallbackMessage(), opts); sendErr != nil {
		return sendErr
	}
	zap.S().Warnf("%s %s has failed to embed: %v", capitalized(content.Descriptor()), content.Fallback, err)
	return nil
}

func capitalized(descriptor string) string {
	if descriptor == "" {
		return descriptor
	}
	return strings.ToUpper(descriptor[:1]) + descriptor[1:]
}

func sendByKind(
	bot *gotgbot.Bot,
	msg *gotgbot.Message,
	content *models.Content,
	keyboard *gotgbot.InlineKeyboardMarkup,
) error {
	switch content.Kind {
	case enums.ContentKindText, enums.ContentKindLink:
		opts := &gotgbot.SendMessageOpts{ParseMode: content.ParseMode}
		if keyboard != nil {
			opts.ReplyMarkup = *keyboard
		}
		_, err := msg.Reply(bot, content.Body, opts)
		return err

	case enums.ContentKindImage:
		_, err := bot.SendPhoto(
			msg.Chat.Id,
			gotgbot.InputFileByURL(content.URL),
			&gotgbot.SendPhotoOpts{
				Caption:         content.Caption.String,
				ReplyParameters: replyParams(msg),
				ReplyMarkup:     markup(keyboard),
			},
		)
		return err

	case enums.ContentKindVideo:
		_, err := bot.SendVideo(
			msg.Chat.Id,
			gotgbot.InputFileByURL(content.URL),
			&gotgbot.SendVideoOpts{
				Caption:         content.Caption.String,
				ReplyParameters: replyParams(msg),
				ReplyMarkup:     markup(keyboard),
			},
		)
		return err

	case enums.ContentKindAnimation:
		_, err := bot.SendAnimation(
			msg.Chat.Id,
			gotgbot.InputFileByURL(content.URL),
			&gotgbot.SendAnimationOpts{
				Caption:         content.Caption.String,
				ReplyParameters: replyParams(msg),
				ReplyMarkup:     markup(keyboard),
			},
		)
		return err

	case enums.ContentKindAlbum:
		inputMedia := make([]gotgbot.InputMedia, 0, len(content.Items))
		for _, item := range content.Items {
			inputMedia = append(inputMedia, albumInputMedia(item))
		}
		msgs, err := bot.SendMediaGroup(
			msg.Chat.Id,
			inputMedia,
			&gotgbot.SendMediaGroupOpts{ReplyParameters: replyParams(msg)},
		)
		if err != nil {
			return err
		}
		if len(msgs) == 0 {
			return errors.New("media group sent but no messages returned")
		}
		// the media group itself can't carry a keyboard, so the album
		// caption goes out as a second reply holding the buttons
		opts := &gotgbot.SendMessageOpts{}
		if keyboard != nil {
			opts.ReplyMarkup = *keyboard
		}
		_, err = msgs[0].Reply(bot, content.Caption.String, opts)
		return err

	default:
		return errors.Errorf("unknown content kind: %s", content.Kind)
	}
}

func albumInputMedia(item *models.Content) gotgbot.InputMedia {
	switch item.Kind {
	case enums.ContentKindVideo:
		return &gotgbot.InputMediaVideo{
			Media:   gotgbot.InputFileByURL(item.URL),
			Caption: item.Caption.String,
		}
	case enums.ContentKindAnimation:
		return &gotgbot.InputMediaAnimation{
			Media:   gotgbot.InputFileByURL(item.URL),
			Caption: item.Caption.String,
		}
	default:
		return &gotgbot.InputMediaPhoto{
			Media:   gotgbot.InputFileByURL(item.URL),
			Caption: item.Caption.String,
		}
	}
}

// Keyboard builds a single-row inline keyboard from metadata buttons.
func Keyboard(metadata models.Metadata) *gotgbot.InlineKeyboardMarkup {
	if metadata == nil {
		return nil
	}
	buttons := metadata.Buttons()
	if len(buttons) == 0 {
		return nil
	}
	row := make([]gotgbot.InlineKeyboardButton, 0, len(buttons))
	for _, button := range buttons {
		row = append(row, gotgbot.InlineKeyboardButton{
			Text: button.Text,
			Url:  button.URL,
		})
	}
	return &gotgbot.InlineKeyboardMarkup{
		InlineKeyboard: [][]gotgbot.InlineKeyboardButton{row},
	}
}

func replyParams(msg *gotgbot.Message) *gotgbot.ReplyParameters {
	return &gotgbot.ReplyParameters{MessageId: msg.MessageId}
}

func markup(keyboard *gotgbot.InlineKeyboardMarkup) gotgbot.ReplyMarkup {
	if keyboard == nil {
		return nil
	}
	return *keyboard
}
