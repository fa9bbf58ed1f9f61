package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"unreddit/enums"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/guregu/null/v6/zero"
)

const (
	captionLimit = 1024
	trimMarker   = "\\[…]"

	iconImage = "🖼"
	iconFilm  = "🎬"
	iconLink  = "🔗"
)

// Content is the closed set of things a loader can resolve a URL into.
// Kind drives the renderer dispatch; the remaining fields are populated
// per kind by the constructors below and are not mutated afterwards,
// except for a single caption overwrite at the loader delegation boundary.
type Content struct {
	Kind      enums.ContentKind
	Body      string // rendered text, Text/Link only
	ParseMode string
	URL       string // direct media URL
	Thumbnail string
	Fallback  string // shown when Telegram rejects the embed
	Icon      string
	Caption   zero.String
	Items     []*Content // album members, media kinds only
}

func NewText(text string, parseMode string) *Content {
	trimmed := TrimText(text)
	return &Content{
		Kind:      enums.ContentKindText,
		Body:      trimmed,
		ParseMode: parseMode,
		Caption:   zero.StringFrom(trimmed),
	}
}

// NewLink represents content that can't be embedded natively:
// a pre-formatted hyperlink with an icon, always sent as HTML.
func NewLink(contentURL string, caption string, icon string) *Content {
	return &Content{
		Kind:      enums.ContentKindLink,
		Body:      fmt.Sprintf("<a href=\"%s\">%s</a> %s", contentURL, icon, caption),
		ParseMode: gotgbot.ParseModeHTML,
		Fallback:  contentURL,
		Icon:      icon,
		Caption:   zero.StringFrom(caption),
	}
}

func NewImage(contentURL string, thumbnailURL string, caption zero.String) *Content {
	if thumbnailURL == "" {
		thumbnailURL = contentURL
	}
	return &Content{
		Kind:      enums.ContentKindImage,
		URL:       contentURL,
		Thumbnail: thumbnailURL,
		Fallback:  contentURL,
		Icon:      iconImage,
		Caption:   caption,
	}
}

func NewAnimation(contentURL string, thumbnailURL string, caption zero.String) *Content {
	return &Content{
		Kind:      enums.ContentKindAnimation,
		URL:       contentURL,
		Thumbnail: thumbnailURL,
		Fallback:  contentURL,
		Icon:      iconFilm,
		Caption:   caption,
	}
}

func NewVideo(contentURL string, thumbnailURL string, caption zero.String) *Content {
	return &Content{
		Kind:      enums.ContentKindVideo,
		URL:       contentURL,
		Thumbnail: thumbnailURL,
		Fallback:  contentURL,
		Icon:      iconFilm,
		Caption:   caption,
	}
}

// NewAlbum wraps an ordered list of media; members never carry their own
// metadata, the album's fallback is the original gallery URL.
func NewAlbum(items []*Content, fallbackURL string, caption zero.String) *Content {
	return &Content{
		Kind:     enums.ContentKindAlbum,
		Items:    items,
		Fallback: fallbackURL,
		Icon:     iconLink,
		Caption:  caption,
	}
}

// SetCaption is used by the Reddit loader to put the post title on
// content resolved through a delegated loader.
func (content *Content) SetCaption(caption zero.String) {
	content.Caption = caption
}

// Descriptor is the lower-case type name used in fallback text.
func (content *Content) Descriptor() string {
	return string(content.Kind)
}

// EmbedFallbackMessage is the degraded text-only rendition sent when
// Telegram rejects a native media embed.
func (content *Content) EmbedFallbackMessage() string {
	return fmt.Sprintf(
		"<a href=\"%s\">%s %s</a>\n\n[Telegram wasn't able to embed the %s]",
		content.Fallback,
		content.Icon,
		content.Caption.String,
		content.Descriptor(),
	)
}

// TrimText caps text at the Telegram caption limit, counted in
// characters, preferring to cut at a line break, then a sentence end,
// then a word boundary, and appends an ellipsis marker. Text already
// within the limit is returned unchanged.
func TrimText(text string) string {
	if utf8.RuneCountInString(text) <= captionLimit {
		return text
	}

	runes := []rune(text)
	markerLen := utf8.RuneCountInString(trimMarker)
	window := string(runes[:captionLimit-markerLen])

	if idx := strings.LastIndex(window, "\n"); idx >= 0 {
		return window[:idx+1] + trimMarker
	}
	// one character shorter, the marker is joined with a space here
	sentenceWindow := string(runes[:captionLimit-markerLen-1])
	if idx := strings.LastIndex(sentenceWindow, ". "); idx >= 0 {
		return sentenceWindow[:idx+1] + " " + trimMarker
	}
	if idx := strings.LastIndex(window, " "); idx >= 0 {
		return window[:idx+1] + trimMarker
	}

	return string(runes[:captionLimit-markerLen-2]) + "\n\n" + trimMarker
}
