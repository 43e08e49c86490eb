package gemini

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// Model replies are not schema-constrained, so the JSON is repaired
// before decoding: markdown fences stripped, the first object literal
// extracted, Python-style None mapped to null.
var (
	markdownFenceRegex = regexp.MustCompile("```(?:json)?")
	jsonObjectRegex    = regexp.MustCompile(`(?s)\{.*\}`)
)

// extractJSON pulls a decodable JSON object out of free model text.
func extractJSON(text string) ([]byte, error) {
	text = markdownFenceRegex.ReplaceAllString(text, "")
	text = strings.Trim(strings.TrimSpace(text), "`")

	match := jsonObjectRegex.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON object in reply", domain.ErrMalformedResponse)
	}
	match = strings.ReplaceAll(match, "None", "null")
	return []byte(match), nil
}

// extractionPayload is the strict shape the extraction prompt asks for.
// Pointers distinguish absent fields from genuine zeros.
type extractionPayload struct {
	Category    string   `json:"category"`
	Basis       string   `json:"basis"`
	EnergyKJ    *float64 `json:"energy_kj"`
	EnergyKcal  *float64 `json:"energy_kcal"`
	SatFatG     *float64 `json:"satfat_g"`
	SugarsG     *float64 `json:"sugars_g"`
	SodiumMg    *float64 `json:"sodium_mg"`
	SaltG       *float64 `json:"salt_g"`
	ProteinG    *float64 `json:"protein_g"`
	FibreG      *float64 `json:"fibre_g"`
	FVNLPct     *float64 `json:"fvnl_pct"`
	CalciumMg   *float64 `json:"calcium_mg"`
	Ingredients []string `json:"ingredients"`
	Expiry      string   `json:"expiry"`
	Confidence  string   `json:"confidence"`
}

// parseExtraction decodes a model reply into an ExtractionResult with
// explicit default-filling: missing values become 0, energy is derived
// from kcal when only kcal is present, sodium from salt likewise, and
// negative readings are clamped to 0.
func parseExtraction(text string) (*domain.ExtractionResult, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload extractionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	profile := domain.NutrientProfile{
		EnergyKJ:  nonNegative(payload.EnergyKJ),
		SatFatG:   nonNegative(payload.SatFatG),
		SugarsG:   nonNegative(payload.SugarsG),
		SodiumMg:  nonNegative(payload.SodiumMg),
		ProteinG:  nonNegative(payload.ProteinG),
		FibreG:    nonNegative(payload.FibreG),
		FVNLPct:   nonNegative(payload.FVNLPct),
		CalciumMg: nonNegative(payload.CalciumMg),
	}
	if profile.EnergyKJ == 0 && payload.EnergyKcal != nil {
		profile.EnergyKJ = domain.KcalToKJ(nonNegative(payload.EnergyKcal))
	}
	if profile.SodiumMg == 0 && payload.SaltG != nil {
		profile.SodiumMg = domain.SaltToSodiumMg(nonNegative(payload.SaltG))
	}

	basis := domain.BasisPer100g
	if strings.Contains(strings.ToLower(payload.Basis), "ml") {
		basis = domain.BasisPer100ml
	}

	ingredients := payload.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return &domain.ExtractionResult{
		CategoryHint: payload.Category,
		Basis:        basis,
		Profile:      profile,
		Ingredients:  ingredients,
		Expiry:       payload.Expiry,
		Confidence:   strings.ToLower(strings.TrimSpace(payload.Confidence)),
	}, nil
}

// identityPayload is the shape of the product identification reply.
type identityPayload struct {
	ProductType string `json:"product_type"`
	Brand       string `json:"brand"`
}

// parseIdentity decodes a product identification reply.
func parseIdentity(text string) (*domain.ProductIdentity, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	var payload identityPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	identity := &domain.ProductIdentity{
		ProductType: strings.Trim(strings.TrimSpace(payload.ProductType), `"'`),
		Brand:       strings.Trim(strings.TrimSpace(payload.Brand), `"'`),
	}
	if identity.ProductType == "" {
		identity.ProductType = "food product"
	}
	if identity.Brand == "" {
		identity.Brand = domain.BrandUnknown
	}
	return identity, nil
}

// parseBrand cleans a brand-only plain text reply.
func parseBrand(text string) string {
	brand := strings.Trim(strings.TrimSpace(text), `"'`)
	if brand == "" {
		return domain.BrandUnknown
	}
	return brand
}

func nonNegative(v *float64) float64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
