package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// ScrapeVideo recovers basic metadata for a video the batch details
// endpoint did not return (deleted, private or region-locked items) by
// reading the public watch page's og: meta tags. Counters are not
// available this way and default to "0".
func (c *Client) ScrapeVideo(ctx context.Context, videoID string) (*Video, error) {
	pageURL := fmt.Sprintf("%s?%s", c.watchBaseURL, url.Values{"v": {videoID}}.Encode())

	resp, err := c.pageHTTP.GetContext(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page for %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page for %s returned status %d", videoID, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse watch page for %s: %w", videoID, err)
	}

	title := metaContent(doc, "og:title")
	if title == "" {
		return nil, fmt.Errorf("watch page for %s has no og:title", videoID)
	}

	return &Video{
		ID:           videoID,
		Title:        title,
		Description:  metaContent(doc, "og:description"),
		ViewCount:    "0",
		LikeCount:    "0",
		CommentCount: "0",
	}, nil
}

// metaContent reads the content attribute of a meta tag by property name.
func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return content
}
