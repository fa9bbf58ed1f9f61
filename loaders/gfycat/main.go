package gfycat

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"unreddit/config"
	"unreddit/models"
	"unreddit/util"

	"github.com/guregu/null/v6/zero"
)

var URLPattern = regexp.MustCompile(`gfycat\.com`)

// Loader resolves a gfycat link through the gfycats item endpoint.
type Loader struct {
	client *http.Client
}

func New(client *http.Client) *Loader {
	return &Loader{client: client}
}

func (loader *Loader) Load(
	ctx context.Context,
	rawURL string,
) (*models.Content, models.Metadata, error) {
	postID := postIDFromPath(util.GetPath(rawURL))
	if postID == "" {
		return nil, nil, util.ErrMediaNotFound
	}

	var res gfyResponse
	endpoint := config.Env.GfycatAPIURL + "/v1/gfycats/" + postID
	if err := util.DecodeJSON(ctx, loader.client, endpoint, nil, &res); err != nil {
		return nil, nil, err
	}

	item := res.GfyItem
	title := zero.StringFrom(item.Title)
	if item.Title == "" {
		title = zero.String{}
	}

	// clips with audio only make sense as videos; silent ones
	// embed better as animations
	if item.HasAudio {
		return models.NewVideo(item.MP4URL, item.Thumb100PosterURL, title), Metadata{}, nil
	}
	return models.NewAnimation(item.GifURL, item.Thumb100PosterURL, title), Metadata{}, nil
}

// postIDFromPath takes the segment before the first hyphen of the last
// path component, e.g. /DependableSpiffyFugu-size_restricted → DependableSpiffyFugu.
func postIDFromPath(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return ""
	}
	segments := strings.Split(trimmed, "/")
	last := segments[len(segments)-1]
	postID, _, _ := strings.Cut(last, "-")
	return postID
}

// Metadata is empty: gfycat content only ever reaches a reply through
// Reddit delegation, which supplies its own buttons.
type Metadata struct{}

func (Metadata) Buttons() []models.Button {
	return nil
}
