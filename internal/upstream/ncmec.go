package upstream

import "safety-hub-go/pkg/model"

// NCMEC nationwide AMBER Alert RSS feed.
const amberFeedURL = "https://www.missingkids.org/feeds/amber.xml"

// AmberClient fetches the NCMEC AMBER Alert syndication feed.
type AmberClient struct {
	feedURL string
	fetcher *Fetcher
}

// NewAmberClient creates an AMBER feed client. An empty feedURL selects the
// public NCMEC feed.
func NewAmberClient(feedURL string, fetcher *Fetcher) *AmberClient {
	if feedURL == "" {
		feedURL = amberFeedURL
	}
	return &AmberClient{
		feedURL: feedURL,
		fetcher: fetcher,
	}
}

// Bulletins fetches the feed and extracts its items. The second return is
// false when the feed could not be retrieved.
func (c *AmberClient) Bulletins() ([]model.FeedItem, bool) {
	out := c.fetcher.Get("ncmec", c.feedURL, nil, nil)
	if !out.Available {
		return nil, false
	}
	return extractFeedItems(string(out.Body)), true
}
