package core

import (
	"crypto/md5"
	"fmt"

	"unreddit/enums"
	"unreddit/models"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"go.uber.org/zap"
)

// AnswerInline answers an inline query with the resolved content.
// Only media kinds produce results; an empty result set answers
// nothing, and answer failures are logged and swallowed.
func AnswerInline(
	bot *gotgbot.Bot,
	query *gotgbot.InlineQuery,
	content *models.Content,
	metadata models.Metadata,
) error {
	results := InlineResults(content, metadata)
	if len(results) == 0 {
		return nil
	}
	if _, err := query.Answer(bot, results, nil); err != nil {
		zap.S().Errorf("failed to answer inline query: %v", err)
	}
	return nil
}

// InlineResults maps content to inline query results. Result ids are the
// MD5 of the payload URL, so repeated queries for the same media
// deduplicate client-side. Albums expand to one result per member;
// members without a thumbnail are skipped.
func InlineResults(
	content *models.Content,
	metadata models.Metadata,
) []gotgbot.InlineQueryResult {
	keyboard := Keyboard(metadata)

	switch content.Kind {
	case enums.ContentKindText, enums.ContentKindLink:
		return nil

	case enums.ContentKindAlbum:
		var results []gotgbot.InlineQueryResult
		for _, item := range content.Items {
			if item.Thumbnail == "" {
				continue
			}
			if result := inlineResult(item, nil); result != nil {
				results = append(results, result)
			}
		}
		return results

	default:
		if content.Thumbnail == "" {
			return nil
		}
		result := inlineResult(content, keyboard)
		if result == nil {
			return nil
		}
		return []gotgbot.InlineQueryResult{result}
	}
}

func inlineResult(
	content *models.Content,
	keyboard *gotgbot.InlineKeyboardMarkup,
) gotgbot.InlineQueryResult {
	resultID := fmt.Sprintf("%x", md5.Sum([]byte(content.URL)))
	caption := content.Caption.String

	switch content.Kind {
	case enums.ContentKindVideo:
		return &gotgbot.InlineQueryResultVideo{
			Id:           resultID,
			VideoUrl:     content.URL,
			MimeType:     "video/mp4",
			ThumbnailUrl: content.Thumbnail,
			Title:        caption,
			Caption:      caption,
			ReplyMarkup:  keyboard,
		}
	case enums.ContentKindImage:
		return &gotgbot.InlineQueryResultPhoto{
			Id:           resultID,
			PhotoUrl:     content.URL,
			ThumbnailUrl: content.Thumbnail,
			Title:        caption,
			Caption:      caption,
			ReplyMarkup:  keyboard,
		}
	case enums.ContentKindAnimation:
		return &gotgbot.InlineQueryResultGif{
			Id:           resultID,
			GifUrl:       content.URL,
			ThumbnailUrl: content.Thumbnail,
			Title:        caption,
			Caption:      caption,
			ReplyMarkup:  keyboard,
		}
	default:
		return nil
	}
}
