package usecase

import "github.com/saipranav2004/AI-product-analysis/internal/domain"

// PickWinner applies the comparison tie-break rule: the strictly higher
// numeric rating wins; equal ratings tie. Unparsable ratings (such as
// "N/A") count as 0, so two failed analyses tie rather than error.
func PickWinner(a, b *domain.AnalysisResult) domain.Winner {
	ratingA := numericOrZero(a)
	ratingB := numericOrZero(b)

	switch {
	case ratingA > ratingB:
		return domain.WinnerA
	case ratingB > ratingA:
		return domain.WinnerB
	default:
		return domain.WinnerTie
	}
}

func numericOrZero(result *domain.AnalysisResult) float64 {
	if result == nil {
		return 0
	}
	if v, ok := domain.ParseRating(result.Rating); ok {
		return v
	}
	return 0
}
