// Package playstore implements the review feed source for Google Play apps.
package playstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"FintechReviews/internal/domain"
	"FintechReviews/internal/feed"
)

const sourceTag = "Google Play"

// Client pages through the review feed in newest-first order.
type Client struct {
	feedURL  string
	storeURL string
	client   *http.Client
	logger   *slog.Logger
	pageSize int
}

var _ feed.Source = (*Client)(nil)

// NewClient wires an HTTP client; pageSize defaults to 150 per feed page.
func NewClient(feedURL, storeURL string, client *http.Client, logger *slog.Logger) *Client {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		feedURL:  strings.TrimSuffix(feedURL, "/"),
		storeURL: strings.TrimSuffix(storeURL, "/"),
		client:   client,
		logger:   logger,
		pageSize: 150,
	}
}

// Name identifies the source inside the registry.
func (c *Client) Name() string {
	return "google-play"
}

type feedReview struct {
	Text  string    `json:"text"`
	Score int       `json:"score"`
	At    time.Time `json:"at"`
}

type feedPage struct {
	Reviews   []feedReview `json:"reviews"`
	NextToken string       `json:"nextToken"`
}

// Fetch pulls up to req.Count newest reviews, no score filtering, following
// continuation tokens until the feed is exhausted.
func (c *Client) Fetch(ctx context.Context, req feed.Request) ([]domain.RawReview, error) {
	if req.AppID == "" {
		return nil, fmt.Errorf("missing app id for bank %q: %w", req.Bank, domain.ErrValidation)
	}

	if title, err := c.appTitle(ctx, req.AppID); err != nil {
		c.debug("app title lookup failed", "app", req.AppID, "error", err)
	} else {
		c.debug("resolved app", "app", req.AppID, "title", title)
	}

	results := make([]domain.RawReview, 0, req.Count)
	token := ""
	for len(results) < req.Count {
		page, err := c.fetchPage(ctx, req, token, min(c.pageSize, req.Count-len(results)))
		if err != nil {
			return nil, err
		}

		for _, entry := range page.Reviews {
			if len(results) == req.Count {
				break
			}
			results = append(results, domain.RawReview{
				Text:   entry.Text,
				Rating: entry.Score,
				Date:   entry.At.Format("2006-01-02"),
				Bank:   req.Bank,
				Source: sourceTag,
			})
		}

		if page.NextToken == "" || len(page.Reviews) == 0 {
			break
		}
		token = page.NextToken
	}

	return results, nil
}

func (c *Client) fetchPage(ctx context.Context, req feed.Request, token string, num int) (*feedPage, error) {
	pageURL := fmt.Sprintf("%s/apps/%s/reviews", c.feedURL, url.PathEscape(req.AppID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %v: %w", err, domain.ErrFeed)
	}
	httpReq.Header.Set("User-Agent", "FintechReviews/1.0")

	query := httpReq.URL.Query()
	query.Set("lang", req.Language)
	query.Set("country", req.Country)
	query.Set("sort", "newest")
	query.Set("num", strconv.Itoa(num))
	if token != "" {
		query.Set("token", token)
	}
	httpReq.URL.RawQuery = query.Encode()

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request reviews: %v: %w", err, domain.ErrFeed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned %s: %w", resp.Status, domain.ErrFeed)
	}

	var page feedPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode feed page: %v: %w", err, domain.ErrParse)
	}

	return &page, nil
}

// appTitle scrapes the store details page for the app display name. Used for
// logging only; a failure never blocks the review fetch.
func (c *Client) appTitle(ctx context.Context, appID string) (string, error) {
	pageURL := fmt.Sprintf("%s/store/apps/details?id=%s", c.storeURL, url.QueryEscape(appID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "FintechReviews/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request details page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("store returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse details page: %w", err)
	}

	title := strings.TrimSpace(doc.Find(`h1[itemprop="name"]`).First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		return "", fmt.Errorf("no title element found")
	}
	return title, nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
