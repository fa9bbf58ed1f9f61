package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMedia(t *testing.T) {
	assert.False(t, ContentKindText.IsMedia())
	assert.False(t, ContentKindLink.IsMedia())
	assert.True(t, ContentKindImage.IsMedia())
	assert.True(t, ContentKindAnimation.IsMedia())
	assert.True(t, ContentKindVideo.IsMedia())
	assert.True(t, ContentKindAlbum.IsMedia())
}
