package upstream

import (
	"strings"

	"safety-hub-go/pkg/model"
)

// placeholderTitle stands in for bulletins whose title tags are missing.
const placeholderTitle = "AMBER Alert"

// extractFeedItems pulls {title, link, description} out of a raw RSS body
// with plain substring scanning. This is a deliberate best-effort
// non-parser: it assumes well-formed, non-nested tags and will over- or
// under-capture on bodies that violate that. Swapping in a real XML parser
// would change observable output on malformed feeds, so don't.
func extractFeedItems(body string) []model.FeedItem {
	chunks := strings.Split(body, "<item>")
	items := make([]model.FeedItem, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		title, ok := sliceBetween(chunk, "<title>", "</title>")
		if !ok {
			title = placeholderTitle
		}
		link, _ := sliceBetween(chunk, "<link>", "</link>")
		description, _ := sliceBetween(chunk, "<description>", "</description>")

		items = append(items, model.FeedItem{
			Title:       title,
			Link:        link,
			Description: description,
		})
	}
	return items
}

// sliceBetween returns the trimmed text between the first occurrence of
// openTag and the first occurrence of closeTag. Both tags must be present,
// in order; otherwise ok is false and the text is empty.
func sliceBetween(chunk, openTag, closeTag string) (text string, ok bool) {
	start := strings.Index(chunk, openTag)
	end := strings.Index(chunk, closeTag)
	if start == -1 || end == -1 || end < start+len(openTag) {
		return "", false
	}
	return strings.TrimSpace(chunk[start+len(openTag) : end]), true
}
