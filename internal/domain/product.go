package domain

// ProductIdentity is the product type and brand read from a label photo.
type ProductIdentity struct {
	ProductType string `json:"product_type"`
	Brand       string `json:"brand"`
}

// BrandUnknown is reported when no brand name is visible on the label.
const BrandUnknown = "Unknown"

// SearchSnippet is one ranked web search result.
type SearchSnippet struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// RecommendationPair holds the two suggestions returned for a scanned
// product: a healthier variant from the same brand (may be absent) and
// the best alternative from a different brand. Field names are fixed.
type RecommendationPair struct {
	SameBrandName   *string `json:"same_brand_name"`
	SameBrandReason string  `json:"same_brand_reason"`
	SameBrandBuy    string  `json:"same_brand_buy"`
	AltBrandName    string  `json:"alt_brand_name"`
	AltBrandReason  string  `json:"alt_brand_reason"`
	AltBrandBuy     string  `json:"alt_brand_buy"`
}

// Winner identifies which of two compared products rated higher.
type Winner string

const (
	WinnerA   Winner = "a"
	WinnerB   Winner = "b"
	WinnerTie Winner = "tie"
)

// ComparisonResult is the outcome of comparing two products side by side.
type ComparisonResult struct {
	ProductA *AnalysisResult `json:"product_a"`
	ProductB *AnalysisResult `json:"product_b"`
	Winner   Winner          `json:"winner"`
}

// SessionRecord is the single-slot per-session capture state: the most
// recently captured image plus the category cached by a later scoring
// step. Owned exclusively by one session key.
type SessionRecord struct {
	Image          []byte
	MIMEType       string
	CachedCategory *Category
}
