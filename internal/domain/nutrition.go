package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Basis is the serving basis the label values are expressed in.
type Basis string

const (
	BasisPer100g  Basis = "per_100g"
	BasisPer100ml Basis = "per_100ml"
)

// NutrientProfile holds the nutrient facts read from a label,
// per 100g (solids) or per 100ml (beverages and liquid dairy).
// All values are non-negative; missing values are zero.
type NutrientProfile struct {
	EnergyKJ  float64 `json:"energy_kj"`
	SatFatG   float64 `json:"satfat_g"`
	SugarsG   float64 `json:"sugars_g"`
	SodiumMg  float64 `json:"sodium_mg"`
	ProteinG  float64 `json:"protein_g"`
	FibreG    float64 `json:"fibre_g"`
	FVNLPct   float64 `json:"fvnl_pct"`
	CalciumMg float64 `json:"calcium_mg"`
}

// KcalToKJ converts label energy given only in kcal to kJ.
func KcalToKJ(kcal float64) float64 {
	return kcal * 4.18
}

// SaltToSodiumMg converts label salt (grams) to sodium (milligrams).
// Salt is 2.5x its sodium content by weight.
func SaltToSodiumMg(saltG float64) float64 {
	return saltG / 2.5 * 1000
}

// ScoreBreakdown carries the per-nutrient point values behind a rating.
// Field names are fixed for client compatibility.
type ScoreBreakdown struct {
	EnergyPts  int `json:"energy_pts"`
	SatFatPts  int `json:"satfat_pts"`
	SugarPts   int `json:"sugar_pts"`
	SodiumPts  int `json:"sodium_pts"`
	ProteinPts int `json:"protein_pts"`
	FibrePts   int `json:"fibre_pts"`
	FVNLPts    int `json:"fvnl_pts"`
	Baseline   int `json:"baseline"`
	Modifying  int `json:"modifying"`
}

// AnalysisResult is the immutable outcome of analysing one label.
// Rating is a decimal string ("0.5".."5") or "N/A" when extraction failed.
type AnalysisResult struct {
	Category        Category       `json:"category"`
	Rating          string         `json:"rating"`
	Confidence      string         `json:"confidence"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
	GoodIngredients []string       `json:"good_ingredients"`
	BadIngredients  []string       `json:"bad_ingredients"`
	FSSAIFlags      []string       `json:"fssai_flags"`
	Reason          string         `json:"reason"`
	Expiry          string         `json:"expiry"`
}

// Confidence levels for how clearly a label could be read.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// RatingNA is the rating value used when no score could be computed.
const RatingNA = "N/A"

// ExpiryNotVisible is reported when no expiry date could be read.
const ExpiryNotVisible = "Not visible"

// ExtractionResult is what the vision extraction capability returns:
// raw label facts only, no scoring.
type ExtractionResult struct {
	CategoryHint string          `json:"category"`
	Basis        Basis           `json:"basis"`
	Profile      NutrientProfile `json:"nutrients"`
	Ingredients  []string        `json:"ingredients"`
	Expiry       string          `json:"expiry"`
	Confidence   string          `json:"confidence"`
}

var ratingNumberRegex = regexp.MustCompile(`[\d.]+`)

// ParseRating extracts a numeric rating from a rating string.
// Tolerates forms like "3.5", "4/5" and embedded numbers.
// Returns false for unparsable values such as "N/A".
func ParseRating(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if idx := strings.Index(s, "/"); idx > 0 {
		s = s[:idx]
	}
	m := ratingNumberRegex.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatRating renders a numeric rating as its canonical string form
// ("3.5", "4", no trailing zeros).
func FormatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}
