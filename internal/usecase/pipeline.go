package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// Pipeline is the per-session multi-step state machine sequencing
// capture -> score -> (optional) find alternative, plus the independent
// two-product comparison flow. State lives in the injected session
// store; scoring itself is pure.
type Pipeline struct {
	sessions    domain.SessionRepository
	labelReader domain.LabelReader
	analyzer    *Analyzer
	recommender *Recommender
}

// NewPipeline wires the pipeline with its collaborators.
func NewPipeline(
	sessions domain.SessionRepository,
	labelReader domain.LabelReader,
	recommender *Recommender,
) *Pipeline {
	return &Pipeline{
		sessions:    sessions,
		labelReader: labelReader,
		analyzer:    NewAnalyzer(),
		recommender: recommender,
	}
}

// Capture stores a newly captured image for the session, overwriting any
// prior record and discarding its cached category. A later Score call
// reads this slot.
func (p *Pipeline) Capture(ctx context.Context, sessionKey string, image []byte, mimeType string) error {
	if sessionKey == "" || len(image) == 0 {
		return domain.ErrInvalidInput
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	record := &domain.SessionRecord{
		Image:          image,
		MIMEType:       mimeType,
		CachedCategory: nil,
	}
	return p.sessions.Set(ctx, sessionKey, record)
}

// Score analyses the captured image for the session. Extraction failure
// degrades to the fallback result instead of an error; the classified
// category is written back into the session record so FetchAlternatives
// can skip a second full extraction.
func (p *Pipeline) Score(ctx context.Context, sessionKey string) (*domain.AnalysisResult, error) {
	record, err := p.sessions.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrMissingSession) {
			return nil, domain.ErrMissingSession
		}
		return nil, err
	}

	extraction, err := p.labelReader.ExtractNutrients(ctx, record.Image, record.MIMEType)
	if err != nil {
		log.Printf("[PIPELINE] extraction failed for session %s: %v", sessionKey, err)
		return p.analyzer.Fallback("Unable to fully analyze this label."), nil
	}

	result := p.analyzer.Analyze(extraction)

	// Cache the category with the image for a faster alternatives step.
	category := result.Category
	record.CachedCategory = &category
	if err := p.sessions.Set(ctx, sessionKey, record); err != nil {
		log.Printf("[PIPELINE] failed to cache category for session %s: %v", sessionKey, err)
	}

	return result, nil
}

// FetchAlternatives derives the recommendation pair for the captured
// product. With a cached non-other category only a brand lookup is
// needed; otherwise the product is identified in full. A session with no
// captured image yields the "no image found" sentinel, never an error.
func (p *Pipeline) FetchAlternatives(ctx context.Context, sessionKey string) *domain.RecommendationPair {
	record, err := p.sessions.Get(ctx, sessionKey)
	if err != nil {
		if !errors.Is(err, domain.ErrMissingSession) {
			log.Printf("[PIPELINE] session lookup failed for %s: %v", sessionKey, err)
		}
		return MissingSessionPair()
	}

	productName, brandName := p.identify(ctx, record)
	log.Printf("[PIPELINE] product: %q brand: %q", productName, brandName)

	return p.recommender.Recommend(ctx, productName, brandName)
}

// identify resolves product name and brand, using the cached category
// fast path when available.
func (p *Pipeline) identify(ctx context.Context, record *domain.SessionRecord) (productName, brandName string) {
	if record.CachedCategory != nil && *record.CachedCategory != domain.CategoryOther {
		productName = record.CachedCategory.DisplayName()
		brand, err := p.labelReader.ReadBrand(ctx, record.Image, record.MIMEType)
		if err != nil {
			log.Printf("[PIPELINE] brand read failed: %v", err)
			brand = domain.BrandUnknown
		}
		return productName, brand
	}

	identity, err := p.labelReader.IdentifyProduct(ctx, record.Image, record.MIMEType)
	if err != nil {
		log.Printf("[PIPELINE] product identification failed: %v", err)
		return "food product", domain.BrandUnknown
	}
	productName = identity.ProductType
	if productName == "" {
		productName = "food product"
	}
	brandName = identity.Brand
	if brandName == "" {
		brandName = domain.BrandUnknown
	}
	return productName, brandName
}

// Compare analyses two independent products and picks the winner. It
// does not touch the session cache. Structurally missing input is the
// one error that propagates; per-product extraction failures degrade to
// fallback results, which tie when both fail.
func (p *Pipeline) Compare(ctx context.Context, imageA []byte, mimeA string, imageB []byte, mimeB string) (*domain.ComparisonResult, error) {
	if len(imageA) == 0 || len(imageB) == 0 {
		return nil, domain.ErrInvalidInput
	}

	resultA := p.analyzeImage(ctx, imageA, mimeA)
	resultB := p.analyzeImage(ctx, imageB, mimeB)

	return &domain.ComparisonResult{
		ProductA: resultA,
		ProductB: resultB,
		Winner:   PickWinner(resultA, resultB),
	}, nil
}

// analyzeImage runs the score-equivalent logic for one standalone image.
func (p *Pipeline) analyzeImage(ctx context.Context, image []byte, mimeType string) *domain.AnalysisResult {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	extraction, err := p.labelReader.ExtractNutrients(ctx, image, mimeType)
	if err != nil {
		log.Printf("[PIPELINE] comparison extraction failed: %v", err)
		return p.analyzer.Fallback("Unable to analyze.")
	}
	return p.analyzer.Analyze(extraction)
}
