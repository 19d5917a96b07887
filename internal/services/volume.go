package services

import (
	"math"

	"github.com/desertthunder/shelf/internal/models"
)

// ParseVolume maps a volume detail payload onto a [models.Volume].
//
// Traversal is permissive: each recognized key of "volumeInfo" is coerced to
// its target type, defaulting to the zero value when absent or of the wrong
// type. Unknown keys are ignored and a missing "volumeInfo" yields an empty volume.
func ParseVolume(data map[string]any) *models.Volume {
	volume := &models.Volume{Authors: []string{}}

	info, ok := data["volumeInfo"].(map[string]any)
	if !ok {
		return volume
	}

	for key, value := range info {
		switch key {
		case "title":
			volume.Title = asString(value)
		case "description":
			volume.Description = asString(value)
		case "publisher":
			volume.Publisher = asString(value)
		case "publishedDate":
			volume.PublishedDate = asString(value)
		case "language":
			volume.Language = asString(value)
		case "pageCount":
			volume.Pages = asCount(value)
		case "imageLinks":
			if links, ok := value.(map[string]any); ok {
				volume.Image = asString(links["thumbnail"])
			}
		case "authors":
			volume.Authors = asStrings(value)
		}
	}

	return volume
}

// firstItemID returns the id of the first search result.
//
// A present first item without a string id yields ("", true).
func firstItemID(data map[string]any) (string, bool) {
	items, ok := data["items"].([]any)
	if !ok || len(items) == 0 {
		return "", false
	}

	item, ok := items[0].(map[string]any)
	if !ok {
		return "", true
	}

	return asString(item["id"]), true
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asCount accepts non-negative integral JSON numbers that fit an int64.
// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive.
func asCount(v any) int64 {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < 0 || f >= math.MaxInt64 {
		return 0
	}
	return int64(f)
}

func asStrings(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return []string{}
	}

	out := make([]string, len(list))
	for i, item := range list {
		out[i] = asString(item)
	}
	return out
}
