package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
	"golang.org/x/time/rate"
)

// Client queries the Google Programmable Search JSON API and implements
// domain.WebSearcher.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	engineID    string
	baseURL     string
	rateLimiter *rate.Limiter
}

// NewClient creates a search client. The free quota is 100 queries per
// day, so outbound calls are limited hard.
func NewClient(apiKey, engineID, baseURL string) *Client {
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		apiKey:      apiKey,
		engineID:    engineID,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// searchResponse maps the fields we use from the API reply.
type searchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
}

// Search runs one query and returns up to maxResults ranked snippets.
// Failures surface as ErrSearchUnavailable so callers can degrade.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchSnippet, error) {
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	if maxResults <= 0 || maxResults > 10 {
		maxResults = 10
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	params := url.Values{}
	params.Add("key", c.apiKey)
	params.Add("cx", c.engineID)
	params.Add("q", query)
	params.Add("num", strconv.Itoa(maxResults))

	reqURL := fmt.Sprintf("%s/customsearch/v1?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("[SEARCH] status %d for query %q", resp.StatusCode, query)
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchUnavailable, resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	snippets := make([]domain.SearchSnippet, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		snippets = append(snippets, domain.SearchSnippet{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
		})
		if len(snippets) == maxResults {
			break
		}
	}

	log.Printf("[SEARCH] %d results for query %q", len(snippets), query)
	return snippets, nil
}
