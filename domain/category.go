// Package domain contains the core concepts of the channel analyzer:
// attachment descriptors, the classification policy and the running
// statistics accumulated over one scan.
package domain

import "strings"

// Category is the classification label assigned to one attachment.
// The zero value means "no category": the item is counted toward the
// grand totals only.
type Category string

const (
	CategoryVideos    Category = "videos"
	CategoryAudio     Category = "audio"
	CategoryImages    Category = "images"
	CategoryDocuments Category = "documents"
	CategoryArchives  Category = "archives"
	CategoryCode      Category = "code"
	CategoryEbooks    Category = "ebooks"
	CategoryDesign    Category = "design"
	CategoryData      Category = "data"
	CategoryApps      Category = "apps"
	CategoryOther     Category = "other"

	// CategoryNone marks attachments that could not be categorized.
	CategoryNone Category = ""
)

// Display returns the capitalized label used in rendered tables.
func (c Category) Display() string {
	if c == CategoryNone {
		return "Unknown"
	}
	s := string(c)
	return strings.ToUpper(s[:1]) + s[1:]
}
