// Package mimetypes interprets the MIME type an attachment declares.
package mimetypes

import (
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// IsAudio reports whether the declared MIME type is an audio type.
func IsAudio(declared string) bool {
	return hasPrefix(declared, "audio/")
}

// IsVideo reports whether the declared MIME type is a video type.
func IsVideo(declared string) bool {
	return hasPrefix(declared, "video/")
}

func hasPrefix(declared, prefix string) bool {
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mt, prefix)
}

// ExtensionFor recovers the canonical filename extension (with leading
// dot) for a declared MIME type. Used when a document carries no
// filename attribute but still announces what it is.
func ExtensionFor(declared string) (string, bool) {
	if declared == "" {
		return "", false
	}
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return "", false
	}
	known := mimetype.Lookup(mt)
	if known == nil || known.Extension() == "" {
		return "", false
	}
	return strings.ToLower(known.Extension()), true
}
