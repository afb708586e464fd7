package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"podcast-metrics/pkg/httpclient"
)

const (
	defaultAPIBaseURL   = "https://www.googleapis.com/youtube/v3"
	defaultWatchBaseURL = "https://www.youtube.com/watch"

	// MaxDetailsBatch is the API's ceiling on ids per videos.list call.
	MaxDetailsBatch = 50

	pageSize = 50
)

// Video is the subset of video metadata this system extracts.
// Counter fields stay strings because that is how the API returns them;
// missing counters default to "0" downstream.
type Video struct {
	ID           string
	Title        string
	Description  string
	PublishedAt  string
	Duration     string // ISO-8601, e.g. "PT2H3M4S"
	ViewCount    string
	LikeCount    string
	CommentCount string
	CategoryID   string
}

// Client talks to the YouTube Data API v3. All calls block and propagate
// errors to the caller; there is no retry or backoff.
type Client struct {
	apiKey       string
	apiBaseURL   string
	watchBaseURL string
	apiHTTP      *httpclient.HTTPClient
	pageHTTP     *httpclient.HTTPClient
}

// NewClient creates a Data API client authenticated with the given key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:       apiKey,
		apiBaseURL:   defaultAPIBaseURL,
		watchBaseURL: defaultWatchBaseURL,
		apiHTTP:      httpclient.NewClient(httpclient.APIClient),
		pageHTTP:     httpclient.NewClient(httpclient.BrowserClient),
	}
}

// NewClientWithBaseURLs creates a client pointed at alternative endpoints.
// Used by tests to stand in a local fake server.
func NewClientWithBaseURLs(apiKey, apiBaseURL, watchBaseURL string) *Client {
	c := NewClient(apiKey)
	c.apiBaseURL = apiBaseURL
	c.watchBaseURL = watchBaseURL
	return c
}

// --- API response types ---

type channelListResponse struct {
	Items []struct {
		ContentDetails struct {
			RelatedPlaylists struct {
				Uploads string `json:"uploads"`
			} `json:"relatedPlaylists"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type playlistItemsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		ContentDetails struct {
			VideoID string `json:"videoId"`
		} `json:"contentDetails"`
	} `json:"items"`
}

type videoCategoriesResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

type videoListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			PublishedAt string `json:"publishedAt"`
			CategoryID  string `json:"categoryId"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
		Statistics struct {
			ViewCount    string `json:"viewCount"`
			LikeCount    string `json:"likeCount"`
			CommentCount string `json:"commentCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// UploadsPlaylistID resolves a channel's canonical "all uploads" playlist.
func (c *Client) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	params := url.Values{}
	params.Set("part", "contentDetails")
	params.Set("id", channelID)

	var resp channelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return "", fmt.Errorf("channel lookup for %s: %w", channelID, err)
	}

	if len(resp.Items) == 0 {
		return "", fmt.Errorf("channel %s not found", channelID)
	}

	uploads := resp.Items[0].ContentDetails.RelatedPlaylists.Uploads
	if uploads == "" {
		return "", fmt.Errorf("channel %s has no uploads playlist", channelID)
	}
	return uploads, nil
}

// PlaylistVideoIDs collects every video ID in the playlist, following the
// continuation token until it is absent. No cap, no backoff.
func (c *Client) PlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var videoIDs []string
	pageToken := ""

	for {
		params := url.Values{}
		params.Set("part", "contentDetails")
		params.Set("playlistId", playlistID)
		params.Set("maxResults", fmt.Sprintf("%d", pageSize))
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		var resp playlistItemsResponse
		if err := c.get(ctx, "playlistItems", params, &resp); err != nil {
			return nil, fmt.Errorf("playlist page for %s: %w", playlistID, err)
		}

		for _, item := range resp.Items {
			videoIDs = append(videoIDs, item.ContentDetails.VideoID)
		}

		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return videoIDs, nil
}

// Categories fetches the category id-to-name table for a region.
func (c *Client) Categories(ctx context.Context, region string) (map[string]string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("regionCode", region)

	var resp videoCategoriesResponse
	if err := c.get(ctx, "videoCategories", params, &resp); err != nil {
		return nil, fmt.Errorf("category table for %s: %w", region, err)
	}

	categories := make(map[string]string, len(resp.Items))
	for _, item := range resp.Items {
		categories[item.ID] = item.Snippet.Title
	}
	return categories, nil
}

// VideoDetails fetches snippet/contentDetails/statistics for one batch of
// ids (at most MaxDetailsBatch). Batching across larger id sets is the
// caller's responsibility.
func (c *Client) VideoDetails(ctx context.Context, ids []string) ([]Video, error) {
	if len(ids) > MaxDetailsBatch {
		return nil, fmt.Errorf("videos.list accepts at most %d ids, got %d", MaxDetailsBatch, len(ids))
	}

	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("id", strings.Join(ids, ","))

	var resp videoListResponse
	if err := c.get(ctx, "videos", params, &resp); err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, Video{
			ID:           item.ID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			PublishedAt:  item.Snippet.PublishedAt,
			Duration:     item.ContentDetails.Duration,
			ViewCount:    item.Statistics.ViewCount,
			LikeCount:    item.Statistics.LikeCount,
			CommentCount: item.Statistics.CommentCount,
			CategoryID:   item.Snippet.CategoryID,
		})
	}
	return videos, nil
}

// get performs one API call and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, v interface{}) error {
	params.Set("key", c.apiKey)
	requestURL := fmt.Sprintf("%s/%s?%s", c.apiBaseURL, endpoint, params.Encode())

	resp, err := c.apiHTTP.GetContext(ctx, requestURL)
	if err != nil {
		return fmt.Errorf("request %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned status %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}
