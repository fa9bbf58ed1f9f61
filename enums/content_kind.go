package enums

// ContentKind values double as the lower-case descriptor
// used in embed fallback messages.
type ContentKind string

const (
	ContentKindText      ContentKind = "text"
	ContentKindLink      ContentKind = "link"
	ContentKindImage     ContentKind = "image"
	ContentKindAnimation ContentKind = "animation"
	ContentKindVideo     ContentKind = "video"
	ContentKindAlbum     ContentKind = "album"
)

func (kind ContentKind) IsMedia() bool {
	switch kind {
	case ContentKindImage, ContentKindAnimation, ContentKindVideo, ContentKindAlbum:
		return true
	default:
		return false
	}
}
