package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsAudioIsVideo(t *testing.T) {
	req := require.New(t)

	req.True(IsAudio("audio/mpeg"))
	req.True(IsAudio("audio/ogg; codecs=opus"))
	req.False(IsAudio("video/mp4"))
	req.False(IsAudio(""))
	req.False(IsAudio("not a mime"))

	req.True(IsVideo("video/mp4"))
	req.True(IsVideo("VIDEO/MP4"))
	req.False(IsVideo("audio/mpeg"))
}

func TestExtensionFor(t *testing.T) {
	req := require.New(t)

	ext, ok := ExtensionFor("application/pdf")
	req.True(ok)
	req.Equal(".pdf", ext)

	ext, ok = ExtensionFor("video/mp4")
	req.True(ok)
	req.Equal(".mp4", ext)

	_, ok = ExtensionFor("")
	req.False(ok)

	_, ok = ExtensionFor("application/x-this-does-not-exist")
	req.False(ok)
}
