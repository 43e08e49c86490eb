package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the Gemini generateContent API.
// It is the process's single gateway to the vision model and implements
// domain.LabelReader.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

const maxAttempts = 3

// NewClient creates a Gemini API client. The free tier allows roughly
// 15 requests per minute, so outbound calls are limited to 0.25/sec
// with a small burst.
func NewClient(apiKey, baseURL, model string) *Client {
	limiter := rate.NewLimiter(rate.Limit(0.25), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// generateRequest mirrors the generateContent request body: one text
// part plus one inline image part.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ExtractNutrients reads raw label facts from a photo.
func (c *Client) ExtractNutrients(ctx context.Context, image []byte, mimeType string) (*domain.ExtractionResult, error) {
	text, err := c.generate(ctx, extractionPrompt, image, mimeType)
	if err != nil {
		return nil, err
	}
	result, err := parseExtraction(text)
	if err != nil {
		log.Printf("[GEMINI] extraction parse error: %v", err)
		return nil, err
	}
	return result, nil
}

// IdentifyProduct reads the product type and brand from a photo.
func (c *Client) IdentifyProduct(ctx context.Context, image []byte, mimeType string) (*domain.ProductIdentity, error) {
	text, err := c.generate(ctx, identifyPrompt, image, mimeType)
	if err != nil {
		return nil, err
	}
	identity, err := parseIdentity(text)
	if err != nil {
		log.Printf("[GEMINI] identity parse error: %v", err)
		return nil, err
	}
	return identity, nil
}

// ReadBrand reads only the brand name from a photo.
func (c *Client) ReadBrand(ctx context.Context, image []byte, mimeType string) (string, error) {
	text, err := c.generate(ctx, brandPrompt, image, mimeType)
	if err != nil {
		return "", err
	}
	return parseBrand(text), nil
}

// generate executes one prompt+image call with rate limiting and up to
// three attempts with backoff for transient failures.
func (c *Client) generate(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", domain.ErrInvalidInput
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	body := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: prompt},
				{InlineData: &inlineData{
					MIMEType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("rate limiter error: %w", err)
		}

		text, err := c.doGenerate(ctx, reqURL, payload)
		if err == nil {
			return text, nil
		}
		lastErr = err
		log.Printf("[GEMINI] request error (attempt %d): %v", attempt, err)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(time.Duration(attempt*500) * time.Millisecond):
		}
	}

	log.Printf("[GEMINI] all retries failed")
	return "", fmt.Errorf("%w: %v", domain.ErrExtractionUnavailable, lastErr)
}

// doGenerate performs a single generateContent request.
func (c *Client) doGenerate(ctx context.Context, reqURL string, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiAPI, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[GEMINI] status %d body: %s", resp.StatusCode, truncate(respBody, 300))
		}
		return "", fmt.Errorf("%w: status %d", domain.ErrGeminiAPI, resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates", domain.ErrGeminiAPI)
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if c.debug {
		log.Printf("[GEMINI] reply: %s", truncate([]byte(text), 300))
	}
	return text, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
