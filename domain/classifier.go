package domain

import (
	"path/filepath"
	"strings"

	"channel-scope/domain/mimetypes"
)

// categoryPriority fixes the resolution order for extensions that belong
// to more than one set (.json, .xml, .sql, .xlsx, .csv). The first
// category in this slice that claims an extension wins; map iteration
// order is never relied upon.
var categoryPriority = []Category{
	CategoryVideos,
	CategoryAudio,
	CategoryImages,
	CategoryDocuments,
	CategoryArchives,
	CategoryCode,
	CategoryEbooks,
	CategoryDesign,
	CategoryData,
	CategoryApps,
}

var categoryExtensions = map[Category][]string{
	CategoryVideos:    {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v", ".3gp", ".mpeg", ".mpg", ".m2ts"},
	CategoryAudio:     {".mp3", ".wav", ".ogg", ".m4a", ".flac", ".aac", ".wma", ".aiff", ".alac"},
	CategoryImages:    {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp", ".tiff", ".svg", ".raw", ".heic"},
	CategoryDocuments: {".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls", ".xlsx", ".ppt", ".pptx"},
	CategoryArchives:  {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz", ".iso"},
	CategoryCode:      {".py", ".js", ".java", ".cpp", ".c", ".html", ".css", ".php", ".json", ".xml", ".sql", ".r", ".swift"},
	CategoryEbooks:    {".epub", ".mobi", ".azw", ".azw3"},
	CategoryDesign:    {".psd", ".ai", ".xd", ".sketch", ".fig", ".xcf"},
	CategoryData:      {".csv", ".db", ".sql", ".sqlite", ".xlsx", ".json", ".xml"},
	CategoryApps:      {".apk", ".ipa", ".aab"},
}

// extensionIndex is built once from categoryExtensions following
// categoryPriority; duplicate extensions keep their first owner.
var extensionIndex = buildExtensionIndex()

func buildExtensionIndex() map[string]Category {
	index := make(map[string]Category)
	for _, category := range categoryPriority {
		for _, ext := range categoryExtensions[category] {
			if _, taken := index[ext]; !taken {
				index[ext] = category
			}
		}
	}
	return index
}

// Classify maps one attachment to its category. The policy is layered,
// first match wins:
//
//  1. no media payload, or a payload carrying neither document nor
//     photo, yields CategoryNone;
//  2. a declared filename is matched by extension (case-insensitive)
//     against the category tables; a filename that matched nothing is
//     CategoryOther;
//  3. without a filename, an extension recovered from the declared MIME
//     type is matched the same way;
//  4. a still-unresolved document with an explicit audio or video
//     attribute resolves to CategoryAudio or CategoryVideos;
//  5. a bare photo payload is CategoryImages.
//
// The attribute step only ever applies on the no-filename path: a
// declared filename settles the outcome at step 2, matched or not.
// A document with no filename, MIME or attribute stays uncategorized:
// it still counts toward the grand totals, never toward the
// per-category breakdown.
//
// Classification is total and pure; it never fails.
func Classify(a Attachment) Category {
	if !a.HasMedia {
		return CategoryNone
	}

	if a.HasDocument {
		if a.Filename != "" {
			ext := strings.ToLower(filepath.Ext(a.Filename))
			if category, ok := extensionIndex[ext]; ok {
				return category
			}
			return CategoryOther
		}
		if ext, ok := mimetypes.ExtensionFor(a.DeclaredMIME); ok {
			if category, found := extensionIndex[ext]; found {
				return category
			}
		}
		if a.Audio {
			return CategoryAudio
		}
		if a.Video {
			return CategoryVideos
		}
		return CategoryNone
	}

	if a.IsPhoto {
		return CategoryImages
	}
	return CategoryNone
}
