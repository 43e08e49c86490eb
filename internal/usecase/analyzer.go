package usecase

import (
	"fmt"
	"strings"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// Analyzer composes the classifier, scoring engine and ingredient
// flagger into one immutable AnalysisResult per label.
type Analyzer struct {
	scoring *ScoringEngine
	flagger *IngredientFlagger
}

// NewAnalyzer creates an analyzer with its pure sub-engines.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		scoring: NewScoringEngine(),
		flagger: NewIngredientFlagger(),
	}
}

// Analyze turns one extraction result into a scored analysis.
// Pure: no IO, no side effects, always succeeds.
func (a *Analyzer) Analyze(extraction *domain.ExtractionResult) *domain.AnalysisResult {
	if extraction == nil {
		return a.Fallback("Unable to fully analyze this label.")
	}

	category := ClassifyCategory(extraction.CategoryHint, strings.Join(extraction.Ingredients, " "))

	basis := extraction.Basis
	if basis == "" {
		basis = defaultBasis(category)
	}

	breakdown := a.scoring.Score(extraction.Profile, category, basis)
	rating := a.scoring.Rating(breakdown)
	flags := a.flagger.Flag(extraction.Ingredients, category)

	confidence := extraction.Confidence
	switch confidence {
	case domain.ConfidenceHigh, domain.ConfidenceMedium, domain.ConfidenceLow:
	default:
		confidence = domain.ConfidenceMedium
	}

	expiry := strings.TrimSpace(extraction.Expiry)
	if expiry == "" {
		expiry = domain.ExpiryNotVisible
	}

	return &domain.AnalysisResult{
		Category:        category,
		Rating:          domain.FormatRating(rating),
		Confidence:      confidence,
		ScoreBreakdown:  breakdown,
		GoodIngredients: flags.Good,
		BadIngredients:  flags.Bad,
		FSSAIFlags:      flags.FSSAI,
		Reason:          composeReason(category, rating, breakdown, flags),
		Expiry:          expiry,
	}
}

// Fallback returns the well-formed default analysis used when extraction
// failed: category other, rating N/A, medium confidence, empty sets.
func (a *Analyzer) Fallback(reason string) *domain.AnalysisResult {
	if reason == "" {
		reason = "Unable to fully analyze this label."
	}
	return &domain.AnalysisResult{
		Category:        domain.CategoryOther,
		Rating:          domain.RatingNA,
		Confidence:      domain.ConfidenceMedium,
		ScoreBreakdown:  domain.ScoreBreakdown{},
		GoodIngredients: []string{},
		BadIngredients:  []string{},
		FSSAIFlags:      []string{},
		Reason:          reason,
		Expiry:          domain.ExpiryNotVisible,
	}
}

// defaultBasis picks the serving basis when extraction did not state one.
func defaultBasis(category domain.Category) domain.Basis {
	if category == domain.CategoryBeverage {
		return domain.BasisPer100ml
	}
	return domain.BasisPer100g
}

// composeReason builds a short fixed-template summary of the result.
// Templated on purpose: free-text generation lives outside this engine.
func composeReason(category domain.Category, rating float64, bd domain.ScoreBreakdown, flags IngredientFlags) string {
	var concerns []string
	if bd.SugarPts >= 5 {
		concerns = append(concerns, "high sugar")
	}
	if bd.SodiumPts >= 5 {
		concerns = append(concerns, "high sodium")
	}
	if bd.SatFatPts >= 5 {
		concerns = append(concerns, "high saturated fat")
	}
	if bd.EnergyPts >= 8 {
		concerns = append(concerns, "very energy dense")
	}
	if len(flags.FSSAI) > 0 {
		concerns = append(concerns, "contains FSSAI-restricted additives")
	} else if len(flags.Bad) > 0 {
		concerns = append(concerns, "contains flagged additives")
	}

	name := category.DisplayName()
	if len(concerns) == 0 {
		if len(flags.Good) > 0 {
			return fmt.Sprintf("This %s scores %s stars with no major nutritional concerns and some beneficial ingredients.", name, domain.FormatRating(rating))
		}
		return fmt.Sprintf("This %s scores %s stars with no major nutritional concerns.", name, domain.FormatRating(rating))
	}
	return fmt.Sprintf("This %s scores %s stars: %s.", name, domain.FormatRating(rating), strings.Join(concerns, ", "))
}
