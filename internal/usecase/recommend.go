package usecase

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// Search result counts, matching the original lookup depth.
const (
	sameBrandResultCount = 3
	altBrandResultCount  = 4
)

// Default recommendation strings used when search comes back empty.
const (
	noVariantReason  = "No healthier variant found from this brand."
	defaultBrandBuy  = "Check brand website"
	altNotFoundName  = "Not found"
	altNotFoundWhy   = "Could not determine a specific alternative at this time."
	defaultAltBuy    = "Check BigBasket or Amazon.in"
	noImageAltName   = "No image found"
	noImageAltReason = "Please go back and scan a product first."
)

// Recommender derives a same-brand and a different-brand suggestion for
// a scanned product from ranked web search snippets.
type Recommender struct {
	searcher domain.WebSearcher
}

// NewRecommender creates a recommender backed by the given searcher.
func NewRecommender(searcher domain.WebSearcher) *Recommender {
	return &Recommender{searcher: searcher}
}

// Recommend produces the two suggestions for a product. Search failures
// are absorbed: the result degrades to the defined "not found" defaults
// instead of returning an error. When the brand is unknown the
// same-brand lookup is skipped entirely.
func (r *Recommender) Recommend(ctx context.Context, productName, brandName string) *domain.RecommendationPair {
	pair := &domain.RecommendationPair{
		SameBrandName:   nil,
		SameBrandReason: noVariantReason,
		SameBrandBuy:    defaultBrandBuy,
		AltBrandName:    altNotFoundName,
		AltBrandReason:  altNotFoundWhy,
		AltBrandBuy:     defaultAltBuy,
	}

	if brandKnown(brandName) {
		query := fmt.Sprintf("%s healthier variant %s India", brandName, productName)
		snippets, err := r.searcher.Search(ctx, query, sameBrandResultCount)
		if err != nil {
			log.Printf("[RECOMMEND] same-brand search failed: %v", err)
		} else {
			r.fillSameBrand(pair, brandName, snippets)
		}
	}

	query := fmt.Sprintf("healthiest %s brand India nutritious", productName)
	snippets, err := r.searcher.Search(ctx, query, altBrandResultCount)
	if err != nil {
		log.Printf("[RECOMMEND] alternative search failed: %v", err)
		return pair
	}
	r.fillAltBrand(pair, brandName, snippets)

	return pair
}

// MissingSessionPair is the sentinel recommendation returned when no
// captured image exists for the session.
func MissingSessionPair() *domain.RecommendationPair {
	return &domain.RecommendationPair{
		SameBrandName:   nil,
		SameBrandReason: "",
		SameBrandBuy:    "",
		AltBrandName:    noImageAltName,
		AltBrandReason:  noImageAltReason,
		AltBrandBuy:     "",
	}
}

// fillSameBrand picks the top snippet that actually mentions the brand.
func (r *Recommender) fillSameBrand(pair *domain.RecommendationPair, brandName string, snippets []domain.SearchSnippet) {
	brandLower := strings.ToLower(brandName)
	for _, s := range snippets {
		title := cleanSnippetTitle(s.Title)
		if title == "" || !strings.Contains(strings.ToLower(title), brandLower) {
			continue
		}
		pair.SameBrandName = &title
		if reason := strings.TrimSpace(s.Snippet); reason != "" {
			pair.SameBrandReason = reason
		}
		if buy := buyHint(s.URL); buy != "" {
			pair.SameBrandBuy = buy
		}
		return
	}
}

// fillAltBrand picks the top snippet naming a product from a different
// brand. Same-brand hits are skipped so the alternative is a real switch.
func (r *Recommender) fillAltBrand(pair *domain.RecommendationPair, brandName string, snippets []domain.SearchSnippet) {
	brandLower := strings.ToLower(brandName)
	for _, s := range snippets {
		title := cleanSnippetTitle(s.Title)
		if title == "" {
			continue
		}
		if brandKnown(brandName) && strings.Contains(strings.ToLower(title), brandLower) {
			continue
		}
		pair.AltBrandName = title
		if reason := strings.TrimSpace(s.Snippet); reason != "" {
			pair.AltBrandReason = reason
		}
		if buy := buyHint(s.URL); buy != "" {
			pair.AltBrandBuy = buy
		}
		return
	}
}

// brandKnown reports whether a usable brand name was read off the label.
func brandKnown(brand string) bool {
	brand = strings.TrimSpace(brand)
	return brand != "" && !strings.EqualFold(brand, domain.BrandUnknown)
}

// cleanSnippetTitle strips trailing site suffixes like " - Amazon.in"
// or " | BigBasket" from a search result title.
func cleanSnippetTitle(title string) string {
	title = strings.TrimSpace(title)
	for _, sep := range []string{" | ", " - ", " – " /* en dash */} {
		if idx := strings.Index(title, sep); idx > 0 {
			title = title[:idx]
		}
	}
	return strings.TrimSpace(title)
}

// buyHint converts a result URL into a where-to-buy hint ("amazon.in").
func buyHint(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.TrimPrefix(u.Host, "www.")
}
