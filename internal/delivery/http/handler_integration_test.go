package http

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saipranav2004/AI-product-analysis/config"
	"github.com/saipranav2004/AI-product-analysis/internal/domain"
	"github.com/saipranav2004/AI-product-analysis/internal/infrastructure/session"
	"github.com/saipranav2004/AI-product-analysis/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	// Set Gin to test mode once for all tests
	gin.SetMode(gin.TestMode)

	exitCode := m.Run()
	os.Exit(exitCode)
}

// stubReader serves one fixed extraction for every image.
type stubReader struct {
	extraction *domain.ExtractionResult
	brand      string
	fail       bool
}

func (s *stubReader) ExtractNutrients(ctx context.Context, image []byte, mimeType string) (*domain.ExtractionResult, error) {
	if s.fail {
		return nil, domain.ErrExtractionUnavailable
	}
	return s.extraction, nil
}

func (s *stubReader) IdentifyProduct(ctx context.Context, image []byte, mimeType string) (*domain.ProductIdentity, error) {
	return &domain.ProductIdentity{ProductType: "potato chips", Brand: s.brand}, nil
}

func (s *stubReader) ReadBrand(ctx context.Context, image []byte, mimeType string) (string, error) {
	return s.brand, nil
}

// stubSearcher returns no results, so recommendations fall back to
// their defaults.
type stubSearcher struct{}

func (s *stubSearcher) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchSnippet, error) {
	return nil, nil
}

func snackExtraction() *domain.ExtractionResult {
	return &domain.ExtractionResult{
		CategoryHint: "snack",
		Basis:        domain.BasisPer100g,
		Profile:      domain.NutrientProfile{EnergyKJ: 2000, SugarsG: 30},
		Ingredients:  []string{"Potato", "E102"},
		Expiry:       "12/2026",
		Confidence:   domain.ConfidenceHigh,
	}
}

// setupTestRouter creates a test router backed by stub externals.
func setupTestRouter(reader domain.LabelReader) *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8000",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:3000"},
			MaxUploadBytes: 16 * 1024 * 1024,
		},
		Session:   config.SessionConfig{TTL: time.Minute},
		RateLimit: config.RateLimitConfig{PerIPRPS: 1000, PerIPBurst: 1000},
	}

	store := session.NewMemoryStore(cfg.Session.TTL)
	recommender := usecase.NewRecommender(&stubSearcher{})
	pipeline := usecase.NewPipeline(store, reader, recommender)
	handler := NewHandler(pipeline, cfg.Server.MaxUploadBytes)

	return SetupRouter(cfg, handler)
}

// multipartImage builds a multipart body with one image file field.
func multipartImage(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func TestHealthCheckEndpoint(t *testing.T) {
	router := setupTestRouter(&stubReader{extraction: snackExtraction()})

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", response["status"])
	}
}

func TestScanEndpoint(t *testing.T) {
	t.Run("multipart upload returns analysis", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction()})

		body, contentType := multipartImage(t, "file", "label.jpg", []byte("fake-image"))
		req, _ := http.NewRequest("POST", "/api/v1/scan", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, body = %s", w.Code, w.Body.String())
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if response["category"] != "snack" {
			t.Errorf("category = %v, want snack", response["category"])
		}
		if response["show_alternative"] != true {
			t.Errorf("show_alternative = %v, want true", response["show_alternative"])
		}
		breakdown, ok := response["score_breakdown"].(map[string]interface{})
		if !ok {
			t.Fatalf("score_breakdown missing: %v", response)
		}
		if breakdown["sugar_pts"] != float64(7) {
			t.Errorf("sugar_pts = %v, want 7", breakdown["sugar_pts"])
		}

		// A session cookie must be issued on first contact.
		cookieFound := false
		for _, c := range w.Result().Cookies() {
			if c.Name == sessionCookieName && c.Value != "" {
				cookieFound = true
			}
		}
		if !cookieFound {
			t.Error("no session cookie issued")
		}
	})

	t.Run("base64 camera data accepted", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction()})

		encoded := base64.StdEncoding.EncodeToString([]byte("fake-image"))
		form := url.Values{"image_data": {"data:image/jpeg;base64," + encoded}}
		req, _ := http.NewRequest("POST", "/api/v1/scan", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, body = %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing image is a bad request", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction()})

		req, _ := http.NewRequest("POST", "/api/v1/scan", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("malformed data URL is a bad request", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction()})

		form := url.Values{"image_data": {"no-comma-here"}}
		req, _ := http.NewRequest("POST", "/api/v1/scan", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("extraction failure still returns a result", func(t *testing.T) {
		router := setupTestRouter(&stubReader{fail: true})

		body, contentType := multipartImage(t, "file", "label.png", []byte("img"))
		req, _ := http.NewRequest("POST", "/api/v1/scan", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, body = %s", w.Code, w.Body.String())
		}

		var response map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if response["rating"] != "N/A" {
			t.Errorf("rating = %v, want N/A", response["rating"])
		}
		if response["show_alternative"] != false {
			t.Errorf("show_alternative = %v, want false", response["show_alternative"])
		}
	})
}

func TestAlternativesEndpoint(t *testing.T) {
	t.Run("fresh session gets no-image sentinel", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction()})

		req, _ := http.NewRequest("GET", "/api/v1/alternatives", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d", w.Code)
		}

		var pair domain.RecommendationPair
		if err := json.Unmarshal(w.Body.Bytes(), &pair); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if pair.AltBrandName != "No image found" {
			t.Errorf("AltBrandName = %q, want the sentinel", pair.AltBrandName)
		}
	})

	t.Run("scan then alternatives reuses the session", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction(), brand: "Lays"})

		body, contentType := multipartImage(t, "file", "label.jpg", []byte("img"))
		scanReq, _ := http.NewRequest("POST", "/api/v1/scan", body)
		scanReq.Header.Set("Content-Type", contentType)
		scanW := httptest.NewRecorder()
		router.ServeHTTP(scanW, scanReq)
		if scanW.Code != http.StatusOK {
			t.Fatalf("scan status = %d", scanW.Code)
		}

		altReq, _ := http.NewRequest("GET", "/api/v1/alternatives", nil)
		for _, c := range scanW.Result().Cookies() {
			altReq.AddCookie(c)
		}
		altW := httptest.NewRecorder()
		router.ServeHTTP(altW, altReq)

		if altW.Code != http.StatusOK {
			t.Fatalf("alternatives status = %d", altW.Code)
		}

		var pair domain.RecommendationPair
		if err := json.Unmarshal(altW.Body.Bytes(), &pair); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		// Stub searcher has no results, so the default alt fields apply,
		// not the no-image sentinel.
		if pair.AltBrandName != "Not found" {
			t.Errorf("AltBrandName = %q, want default for empty search", pair.AltBrandName)
		}
	})
}

func TestCompareEndpoint(t *testing.T) {
	t.Run("two images produce a verdict", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction()})

		encoded := base64.StdEncoding.EncodeToString([]byte("img"))
		form := url.Values{
			"product_a_data": {"data:image/jpeg;base64," + encoded},
			"product_b_data": {"data:image/jpeg;base64," + encoded},
		}
		req, _ := http.NewRequest("POST", "/api/v1/compare", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Status = %d, body = %s", w.Code, w.Body.String())
		}

		var result domain.ComparisonResult
		if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		// Identical extractions rate identically.
		if result.Winner != domain.WinnerTie {
			t.Errorf("Winner = %v, want tie", result.Winner)
		}
		if result.ProductA == nil || result.ProductB == nil {
			t.Error("both products must be present")
		}
	})

	t.Run("missing second image is a bad request", func(t *testing.T) {
		router := setupTestRouter(&stubReader{extraction: snackExtraction()})

		encoded := base64.StdEncoding.EncodeToString([]byte("img"))
		form := url.Values{"product_a_data": {"data:image/jpeg;base64," + encoded}}
		req, _ := http.NewRequest("POST", "/api/v1/compare", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
