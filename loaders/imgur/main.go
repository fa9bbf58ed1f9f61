package imgur

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

var (
	URLPattern     = regexp.MustCompile(`imgur\.com`)
	galleryPattern = regexp.MustCompile(`^/gallery/\w+`)
)

// Loader resolves imgur links through the v3 album/image endpoints.
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
	path := util.GetPath(rawURL)
	if galleryPattern.MatchString(path) {
		return loader.loadAlbum(ctx, rawURL, path)
	}
	return loader.loadImage(ctx, path)
}

func (loader *Loader) loadAlbum(
	ctx context.Context,
	rawURL string,
	path string,
) (*models.Content, models.Metadata, error) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	albumID := segments[len(segments)-1]

	var res albumResponse
	endpoint := config.Env.ImgurAPIURL + "/3/album/" + albumID
	if err := util.DecodeJSON(ctx, loader.client, endpoint, authHeaders(), &res); err != nil {
		return nil, nil, err
	}

	var media []*models.Content
	for _, image := range res.Data.Images {
		if item := fromGalleryItem(image); item != nil {
			media = append(media, item)
		}
	}
	return models.NewAlbum(media, rawURL, optional(res.Data.Title)), Metadata{}, nil
}

func (loader *Loader) loadImage(
	ctx context.Context,
	path string,
) (*models.Content, models.Metadata, error) {
	imageID, _, _ := strings.Cut(strings.TrimPrefix(path, "/"), ".")

	var res imageResponse
	endpoint := config.Env.ImgurAPIURL + "/3/image/" + imageID
	if err := util.DecodeJSON(ctx, loader.client, endpoint, authHeaders(), &res); err != nil {
		return nil, nil, err
	}

	title := optional(res.Data.Title)

	switch res.Data.Type {
	case typeMP4:
		return models.NewVideo(res.Data.MP4, "", title), Metadata{}, nil
	case typeGIF:
		// single GIFs go out as the MP4 transcode, unlike the
		// gallery branch which keeps them as animations
		return models.NewVideo(res.Data.MP4, "", title), Metadata{}, nil
	case typePNG, typeJPEG:
		return models.NewImage(res.Data.Link, "", title), Metadata{}, nil
	default:
		return nil, nil, util.ErrMediaNotFound
	}
}

func fromGalleryItem(image imageData) *models.Content {
	caption := zero.String{}
	switch {
	case image.Title != "" && image.Description != "":
		caption = zero.StringFrom(image.Title + "\n\n" + image.Description)
	case image.Title != "":
		caption = zero.StringFrom(image.Title)
	case image.Description != "":
		caption = zero.StringFrom(image.Description)
	}

	switch image.Type {
	case typeMP4:
		return models.NewVideo(image.MP4, "", caption)
	case typeGIF:
		return models.NewAnimation(image.GIF, "", caption)
	case typePNG, typeJPEG:
		return models.NewImage(image.Link, "", caption)
	default:
		return nil
	}
}

func authHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Client-ID " + config.Env.ImgurClientID,
	}
}

func optional(value string) zero.String {
	if value == "" {
		return zero.String{}
	}
	return zero.StringFrom(value)
}

// Metadata is empty: imgur content only ever reaches a reply through
// Reddit delegation, which supplies its own buttons.
type Metadata struct{}

func (Metadata) Buttons() []models.Button {
	return nil
}
