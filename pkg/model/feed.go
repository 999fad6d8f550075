package model

// FeedItem is one missing-person bulletin extracted from the AMBER RSS feed.
type FeedItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}
