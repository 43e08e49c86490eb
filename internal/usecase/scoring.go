package usecase

import (
	"math"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// nutrientBand is one threshold table row: no points at or below the
// threshold, one point per step above it, capped at max.
type nutrientBand struct {
	threshold float64
	step      float64
	max       int
}

// Baseline threshold tables. Beverages and liquid dairy use the liquid
// bands (per 100ml); everything else uses the solid bands (per 100g).
var (
	liquidBands = struct {
		energy, satfat, sugar, sodium nutrientBand
	}{
		energy: nutrientBand{threshold: 33, step: 6.7, max: 10},
		satfat: nutrientBand{threshold: 0.1, step: 0.14, max: 10},
		sugar:  nutrientBand{threshold: 0.5, step: 2.25, max: 10},
		sodium: nutrientBand{threshold: 30, step: 90, max: 10},
	}

	solidBands = struct {
		energy, satfat, sugar, sodium nutrientBand
	}{
		energy: nutrientBand{threshold: 335, step: 67, max: 10},
		satfat: nutrientBand{threshold: 1, step: 1.4, max: 10},
		sugar:  nutrientBand{threshold: 1, step: 4.5, max: 10},
		sodium: nutrientBand{threshold: 90, step: 270, max: 10},
	}
)

// Modifying point bands, shared across the categories they apply to.
var (
	proteinBand = nutrientBand{threshold: 1, step: 1.4, max: 5}
	fibreBand   = nutrientBand{threshold: 0.9, step: 1, max: 5}
	fvnlBand    = nutrientBand{threshold: 40, step: 10, max: 8}
)

// snackProteinGate: snacks only earn protein points above this level.
const snackProteinGate = 5.0

// calciumBonusThresholdMg: dairy earns one extra modifying point above this.
const calciumBonusThresholdMg = 100.0

const maxBaselinePoints = 40

// points applies a band to a nutrient value:
// clamp(ceil((value-threshold)/step), 0, max) when value > threshold.
func (b nutrientBand) points(value float64) int {
	if value <= b.threshold {
		return 0
	}
	pts := int(math.Ceil((value - b.threshold) / b.step))
	if pts > b.max {
		return b.max
	}
	if pts < 0 {
		return 0
	}
	return pts
}

// ScoringEngine computes a deterministic score breakdown and star rating
// from a nutrient profile, using category-specific threshold tables.
// All methods are pure.
type ScoringEngine struct{}

// NewScoringEngine creates a scoring engine.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score computes the full point breakdown for one product.
func (e *ScoringEngine) Score(profile domain.NutrientProfile, category domain.Category, basis domain.Basis) domain.ScoreBreakdown {
	bands := solidBands
	if e.usesLiquidBands(category, basis) {
		bands = liquidBands
	}

	bd := domain.ScoreBreakdown{
		EnergyPts: bands.energy.points(profile.EnergyKJ),
		SatFatPts: bands.satfat.points(profile.SatFatG),
		SugarPts:  bands.sugar.points(profile.SugarsG),
		SodiumPts: bands.sodium.points(profile.SodiumMg),
	}
	bd.Baseline = bd.EnergyPts + bd.SatFatPts + bd.SugarPts + bd.SodiumPts
	if bd.Baseline > maxBaselinePoints {
		bd.Baseline = maxBaselinePoints
	}

	bd.ProteinPts, bd.FibrePts, bd.FVNLPts = e.modifyingPoints(profile, category)
	bd.Modifying = bd.ProteinPts + bd.FibrePts + bd.FVNLPts
	if category == domain.CategoryDairy && profile.CalciumMg > calciumBonusThresholdMg {
		// Calcium bonus is additive to the modifying total, not capped
		// by the protein max.
		bd.Modifying++
	}

	return bd
}

// modifyingPoints applies the category gates to the positive factors.
func (e *ScoringEngine) modifyingPoints(profile domain.NutrientProfile, category domain.Category) (protein, fibre, fvnl int) {
	switch category {
	case domain.CategoryBeverage:
		// Protein and fibre modifying points are not applied to beverages.
		return 0, 0, 0
	case domain.CategoryDairy:
		return proteinBand.points(profile.ProteinG), fibreBand.points(profile.FibreG), 0
	case domain.CategorySnack:
		if profile.ProteinG > snackProteinGate {
			protein = proteinBand.points(profile.ProteinG)
		}
		return protein, fibreBand.points(profile.FibreG), 0
	default:
		return proteinBand.points(profile.ProteinG),
			fibreBand.points(profile.FibreG),
			fvnlBand.points(profile.FVNLPct)
	}
}

// usesLiquidBands decides the baseline table: beverages always, dairy by
// its physical form, everything else solid.
func (e *ScoringEngine) usesLiquidBands(category domain.Category, basis domain.Basis) bool {
	switch category {
	case domain.CategoryBeverage:
		return true
	case domain.CategoryDairy:
		return basis == domain.BasisPer100ml
	default:
		return false
	}
}

// Rating maps a breakdown to the 0.5-5.0 star scale in 0.5 steps.
// raw = clamp(baseline - modifying, 0, 40); raw 0 is 5 stars, raw 40 is
// 0.5 stars. The rating is never 0.
func (e *ScoringEngine) Rating(bd domain.ScoreBreakdown) float64 {
	raw := bd.Baseline - bd.Modifying
	if raw < 0 {
		raw = 0
	}
	if raw > maxBaselinePoints {
		raw = maxBaselinePoints
	}

	rating := 5 - float64(raw)/float64(maxBaselinePoints)*4.5
	rating = math.Round(rating*2) / 2
	if rating < 0.5 {
		rating = 0.5
	}
	if rating > 5 {
		rating = 5
	}
	return rating
}
