package reddit

import (
	"unreddit/models"
	"unreddit/util"

	"github.com/tidwall/gjson"
)

// Metadata carries the identity of the source post. Permalinks are
// re-anchored on the triggering URL's host rather than the canonical
// reddit.com one.
type Metadata struct {
	PostPermalink    string
	Sub              string
	SubLink          string
	Author           string
	CommentPermalink string
}

func NewMetadata(srcURL string, post gjson.Result) *Metadata {
	sub := post.Get("subreddit_name_prefixed").String()
	return &Metadata{
		PostPermalink: util.RepathURL(srcURL, post.Get("permalink").String()),
		Sub:           sub,
		SubLink:       util.RepathURL(srcURL, sub),
		Author:        "u/" + post.Get("author").String(),
	}
}

func NewCommentMetadata(srcURL string, post gjson.Result, comment gjson.Result) *Metadata {
	metadata := NewMetadata(srcURL, post)
	metadata.Author = "u/" + comment.Get("author").String()
	metadata.CommentPermalink = util.RepathURL(srcURL, comment.Get("permalink").String())
	return metadata
}

// Buttons keeps a fixed order: the comment (when present) comes first,
// then the post, then the subreddit.
func (metadata *Metadata) Buttons() []models.Button {
	var buttons []models.Button
	if metadata.CommentPermalink != "" {
		buttons = append(buttons, models.Button{
			Text: "Comment",
			URL:  metadata.CommentPermalink,
		})
	}
	return append(buttons,
		models.Button{Text: "Original Post", URL: metadata.PostPermalink},
		models.Button{Text: metadata.Sub, URL: metadata.SubLink},
	)
}
