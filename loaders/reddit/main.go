package reddit

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"unreddit/config"
	"unreddit/loaders/gfycat"
	"unreddit/loaders/imgur"
	"unreddit/models"
	"unreddit/util"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/guregu/null/v6/zero"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	URLPattern = regexp.MustCompile(`reddit\.com(/(?:r|u|user)/\w+/|/)(comments|s)`)
	gifPattern = regexp.MustCompile(`(?i)\.gif`)
)

const (
	iconNSFW  = "🔞"
	iconFilm  = "🎬"
	iconImage = "🖼"
	iconLink  = "🔗"
)

// Loader is the entry point of the resolution pipeline. It owns the
// Reddit listing classification and delegates at most one hop to the
// imgur/gfycat loaders, which share its HTTP session.
type Loader struct {
	client *http.Client
	imgur  *imgur.Loader
	gfycat *gfycat.Loader
}

func New(client *http.Client) *Loader {
	return &Loader{
		client: client,
		imgur:  imgur.New(client),
		gfycat: gfycat.New(client),
	}
}

// Load classifies the post behind rawURL into a content variant plus the
// metadata for the reply keyboard. It returns util.ErrMediaNotFound when
// no branch matches; transport errors pass through untouched.
func (loader *Loader) Load(
	ctx context.Context,
	rawURL string,
) (*models.Content, models.Metadata, error) {
	match := URLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return nil, nil, util.ErrMediaNotFound
	}

	if match[2] == "s" {
		// opaque share link, only the redirect knows the canonical post
		target, err := util.ResolveRedirect(ctx, loader.client, rawURL)
		if err != nil {
			return nil, nil, err
		}
		rawURL = target
	}

	isComment := isCommentURL(rawURL)

	path := util.GetPath(rawURL)
	listingURL := util.RepathURL(config.Env.RedditAPIURL, path) + ".json"
	doc, err := util.FetchJSON(ctx, loader.client, listingURL, nil)
	if err != nil {
		return nil, nil, err
	}

	listing := doc.Array()
	if len(listing) < 2 {
		return nil, nil, util.ErrMediaNotFound
	}
	outerPost := listing[0].Get("data.children.0.data")
	if !outerPost.Exists() {
		return nil, nil, util.ErrMediaNotFound
	}

	// title and buttons always describe the outer post, so crossposts
	// link back to themselves while resolving the target's media
	title := outerPost.Get("title").String()
	metadata := NewMetadata(rawURL, outerPost)

	post := outerPost
	if crosspost := post.Get("crosspost_parent_list.0"); crosspost.Exists() {
		post = crosspost
	}

	postHint := post.Get("post_hint")
	thumbnail := post.Get("thumbnail").String()
	if thumbnail == "default" {
		thumbnail = ""
	}

	switch {
	case post.Get("is_video").Bool():
		return videoContent(post, title, thumbnail), metadata, nil

	case post.Get("gallery_data").Exists():
		return galleryContent(post, title), metadata, nil

	case postHint.String() == "image" ||
		(!postHint.Exists() && post.Get("is_reddit_media_domain").Bool()):
		return imageContent(post, title, thumbnail, postHint.Exists()), metadata, nil

	case imgur.URLPattern.MatchString(post.Get("url").String()):
		content, err := loader.imgurContent(ctx, post.Get("url").String(), title)
		if err != nil {
			return nil, nil, err
		}
		return content, metadata, nil

	case gfycat.URLPattern.MatchString(post.Get("url").String()):
		content, err := loader.gfycatContent(ctx, post.Get("url").String(), title)
		if err != nil {
			return nil, nil, err
		}
		return content, metadata, nil

	case postHint.String() == "rich:video":
		icon := iconFilm
		if post.Get("over_18").Bool() {
			icon = iconNSFW
		}
		return models.NewLink(post.Get("url").String(), title, icon), metadata, nil

	case postHint.String() == "link":
		return models.NewLink(post.Get("url").String(), title, iconLink), metadata, nil

	case isComment:
		comment := listing[1].Get("data.children.0.data")
		if !comment.Exists() {
			return nil, nil, util.ErrMediaNotFound
		}
		metadata = NewCommentMetadata(rawURL, outerPost, comment)
		content := models.NewText(comment.Get("body").String(), gotgbot.ParseModeMarkdown)
		return content, metadata, nil

	default:
		return nil, nil, util.ErrMediaNotFound
	}
}

// isCommentURL recognizes the two permalink shapes that point at a
// comment rather than a post: exactly 4 or 6 non-empty path segments.
func isCommentURL(rawURL string) bool {
	var segments []string
	for _, segment := range strings.Split(util.GetPath(rawURL), "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return len(segments) == 4 || len(segments) == 6
}

func videoContent(post gjson.Result, title string, thumbnail string) *models.Content {
	if preview := post.Get("preview.images.0.resolutions.0.url"); preview.Exists() {
		thumbnail = preview.String()
	}
	if thumbnail != "" {
		thumbnail = util.FixURL(thumbnail)
	}
	fallbackURL := post.Get("secure_media.reddit_video.fallback_url").String()
	return models.NewVideo(fallbackURL, thumbnail, optional(title))
}

func galleryContent(post gjson.Result, title string) *models.Content {
	var media []*models.Content

	for _, item := range post.Get("gallery_data.items").Array() {
		image := post.Get("media_metadata").Get(item.Get("media_id").String())
		if image.Get("status").String() != "valid" {
			continue
		}

		caption := zero.String{}
		if value := item.Get("caption").String(); value != "" {
			caption = zero.StringFrom(value)
		}

		imageURL := util.FixURL(image.Get("s.u").String())
		switch image.Get("m").String() {
		case "image/png", "image/jpg":
			media = append(media, models.NewImage(imageURL, "", caption))
		case "image/gif":
			media = append(media, models.NewAnimation(imageURL, "", caption))
		}
	}

	return models.NewAlbum(media, post.Get("url").String(), optional(title))
}

func imageContent(
	post gjson.Result,
	title string,
	thumbnail string,
	hasHint bool,
) *models.Content {
	imageURL := post.Get("url").String()
	isGif := gifPattern.MatchString(imageURL)

	if hasHint && isGif {
		if variant := post.Get("preview.images.0.variants.gif.source.url"); variant.Exists() {
			imageURL = variant.String()
		}
	} else if hasHint {
		if source := post.Get("preview.images.0.source.url"); source.Exists() {
			imageURL = source.String()
			if preview := post.Get("preview.images.0.resolutions.0.url"); preview.Exists() {
				thumbnail = preview.String()
			}
		}
	}

	imageURL = util.FixURL(imageURL)
	if thumbnail != "" {
		thumbnail = util.FixURL(thumbnail)
	}

	if isGif {
		return models.NewAnimation(imageURL, thumbnail, optional(title))
	}
	return models.NewImage(imageURL, thumbnail, optional(title))
}

func (loader *Loader) imgurContent(
	ctx context.Context,
	postURL string,
	title string,
) (*models.Content, error) {
	content, _, err := loader.imgur.Load(ctx, postURL)
	if err != nil {
		if !util.IsTransportError(err) {
			return nil, err
		}
		zap.S().Debugf("imgur resolution failed for %s: %v", postURL, err)
		return models.NewLink(postURL, title, iconImage), nil
	}
	content.SetCaption(optional(title))
	return content, nil
}

func (loader *Loader) gfycatContent(
	ctx context.Context,
	postURL string,
	title string,
) (*models.Content, error) {
	content, _, err := loader.gfycat.Load(ctx, postURL)
	if err != nil {
		if !util.IsTransportError(err) {
			return nil, err
		}
		zap.S().Debugf("gfycat resolution failed for %s: %v", postURL, err)
		return models.NewLink(postURL, title, iconFilm), nil
	}
	content.SetCaption(optional(title))
	return content, nil
}

func optional(value string) zero.String {
	if value == "" {
		return zero.String{}
	}
	return zero.StringFrom(value)
}
