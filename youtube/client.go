// Package youtube provides transcript retrieval and metadata lookup for
// YouTube videos, plus the video implementation of flashgen.Extractor.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/flashgen"
)

// Default endpoints. Overridable in tests.
const (
	defaultTimedtextURL = "https://video.google.com/timedtext"
	defaultOEmbedURL    = "https://www.youtube.com/oembed"
)

// DefaultTimeout is the default timeout for transcript and metadata calls.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements the video services at compile time.
var (
	_ flashgen.TranscriptService    = (*Client)(nil)
	_ flashgen.VideoMetadataService = (*Client)(nil)
)

// Client retrieves caption transcripts via the timedtext endpoint and video
// titles via oEmbed.
type Client struct {
	httpClient   *http.Client
	timedtextURL string
	oembedURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithTimedtextURL overrides the timedtext endpoint.
func WithTimedtextURL(u string) Option {
	return func(cl *Client) {
		cl.timedtextURL = u
	}
}

// WithOEmbedURL overrides the oEmbed endpoint.
func WithOEmbedURL(u string) Option {
	return func(cl *Client) {
		cl.oembedURL = u
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: DefaultTimeout},
		timedtextURL: defaultTimedtextURL,
		oembedURL:    defaultOEmbedURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Transcript returns the ordered English caption segments for a video.
// Returns ENOTFOUND when the video has no caption track.
func (c *Client) Transcript(ctx context.Context, videoID string) ([]flashgen.Segment, error) {
	endpoint := fmt.Sprintf("%s?lang=en&v=%s", c.timedtextURL, url.QueryEscape(videoID))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, flashgen.Errorf(flashgen.EUNAVAILABLE, "transcript fetch failed for video %q: %v", videoID, err)
	}
	if status == http.StatusNotFound || strings.TrimSpace(body) == "" {
		return nil, flashgen.Errorf(flashgen.ENOTFOUND, "no transcript available for video %q", videoID)
	}
	if status != http.StatusOK {
		return nil, flashgen.Errorf(flashgen.EUNAVAILABLE, "transcript service returned HTTP %d for video %q", status, videoID)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, flashgen.Errorf(flashgen.EINTERNAL, "malformed transcript for video %q: %v", videoID, err)
	}

	root := doc.SelectElement("transcript")
	if root == nil {
		return nil, flashgen.Errorf(flashgen.ENOTFOUND, "no transcript available for video %q", videoID)
	}

	var segments []flashgen.Segment
	for _, el := range root.SelectElements("text") {
		text := strings.TrimSpace(html.UnescapeString(el.Text()))
		if text == "" {
			continue
		}
		start, _ := strconv.ParseFloat(el.SelectAttrValue("start", "0"), 64)
		dur, _ := strconv.ParseFloat(el.SelectAttrValue("dur", "0"), 64)
		segments = append(segments, flashgen.Segment{
			Text:     text,
			Start:    start,
			Duration: dur,
		})
	}

	if len(segments) == 0 {
		return nil, flashgen.Errorf(flashgen.ENOTFOUND, "no transcript available for video %q", videoID)
	}

	return segments, nil
}

// Title returns the video title from the oEmbed endpoint.
func (c *Client) Title(ctx context.Context, videoID string) (string, error) {
	watchURL := "https://www.youtube.com/watch?v=" + url.QueryEscape(videoID)
	endpoint := fmt.Sprintf("%s?url=%s&format=json", c.oembedURL, url.QueryEscape(watchURL))

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return "", flashgen.Errorf(flashgen.EUNAVAILABLE, "metadata fetch failed for video %q: %v", videoID, err)
	}
	if status != http.StatusOK {
		return "", flashgen.Errorf(flashgen.EUNAVAILABLE, "metadata service returned HTTP %d for video %q", status, videoID)
	}

	var payload struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return "", flashgen.Errorf(flashgen.EINTERNAL, "malformed metadata for video %q: %v", videoID, err)
	}
	if payload.Title == "" {
		return "", flashgen.Errorf(flashgen.ENOTFOUND, "no title in metadata for video %q", videoID)
	}

	return payload.Title, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (string, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}

	return string(body), resp.StatusCode, nil
}
