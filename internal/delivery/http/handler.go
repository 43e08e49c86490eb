package http

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saipranav2004/AI-product-analysis/internal/domain"
	"github.com/saipranav2004/AI-product-analysis/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pipeline       *usecase.Pipeline
	maxUploadBytes int64
}

// NewHandler creates a new HTTP handler
func NewHandler(pipeline *usecase.Pipeline, maxUploadBytes int64) *Handler {
	return &Handler{
		pipeline:       pipeline,
		maxUploadBytes: maxUploadBytes,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "label-scan-backend",
		"version": "1.0.0",
	})
}

// scanResponse is the analysis result plus the flag telling the client
// whether offering an alternative makes sense (rating below 5).
type scanResponse struct {
	*domain.AnalysisResult
	ShowAlternative bool `json:"show_alternative"`
}

// ScanLabel captures an uploaded label image for the session and returns
// its analysis. Accepts a multipart "file" or a base64 "image_data"
// data-URL form field (camera capture).
func (h *Handler) ScanLabel(c *gin.Context) {
	image, mimeType, err := h.readImage(c, "file", "image_data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionKey := SessionKey(c)
	if err := h.pipeline.Capture(c.Request.Context(), sessionKey, image, mimeType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}

	result, err := h.pipeline.Score(c.Request.Context(), sessionKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	rating, ok := domain.ParseRating(result.Rating)
	c.JSON(http.StatusOK, scanResponse{
		AnalysisResult:  result,
		ShowAlternative: ok && rating < 5,
	})
}

// Alternatives returns the recommendation pair for the session's
// captured product. A fresh session gets the "no image found" sentinel.
func (h *Handler) Alternatives(c *gin.Context) {
	pair := h.pipeline.FetchAlternatives(c.Request.Context(), SessionKey(c))
	c.JSON(http.StatusOK, pair)
}

// CompareProducts analyses two uploaded products and picks the winner.
// Each slot accepts "<slot>_file" or "<slot>_data".
func (h *Handler) CompareProducts(c *gin.Context) {
	imageA, mimeA, err := h.readImage(c, "product_a_file", "product_a_data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("product_a: %v", err)})
		return
	}
	imageB, mimeB, err := h.readImage(c, "product_b_file", "product_b_data")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("product_b: %v", err)})
		return
	}

	result, err := h.pipeline.Compare(c.Request.Context(), imageA, mimeA, imageB, mimeB)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing image"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "comparison failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// readImage pulls image bytes from either a multipart file field or a
// base64 data-URL form field, whichever the client sent.
func (h *Handler) readImage(c *gin.Context, fileField, dataField string) ([]byte, string, error) {
	if fileHeader, err := c.FormFile(fileField); err == nil {
		if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
			return nil, "", fmt.Errorf("image exceeds %d byte limit", h.maxUploadBytes)
		}
		file, err := fileHeader.Open()
		if err != nil {
			return nil, "", fmt.Errorf("could not open uploaded file")
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil || len(image) == 0 {
			return nil, "", fmt.Errorf("no file selected, please choose an image")
		}
		return image, mimeFromFilename(fileHeader.Filename), nil
	}

	if dataURL := c.PostForm(dataField); dataURL != "" {
		idx := strings.Index(dataURL, ",")
		if idx < 0 {
			return nil, "", fmt.Errorf("invalid image data, please try again")
		}
		image, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
		if err != nil || len(image) == 0 {
			return nil, "", fmt.Errorf("invalid image data, please try again")
		}
		if h.maxUploadBytes > 0 && int64(len(image)) > h.maxUploadBytes {
			return nil, "", fmt.Errorf("image exceeds %d byte limit", h.maxUploadBytes)
		}
		return image, "image/jpeg", nil
	}

	return nil, "", fmt.Errorf("no image received, please try again")
}

// mimeFromFilename infers the upload's mime type from its extension.
func mimeFromFilename(name string) string {
	lower := strings.ToLower(name)
	if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "image/jpeg"
	}
	return "image/png"
}
