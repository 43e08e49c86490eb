package usecase

import (
	"strings"

	"github.com/saipranav2004/AI-product-analysis/internal/domain"
)

// flagEntry is one reference-table row: the canonical display label
// plus the synonyms it is recognised by on a label.
type flagEntry struct {
	label    string
	synonyms []string
}

// badIngredientTable lists additives penalised under the HSR scheme:
// artificial colours and preservatives by E-number, artificial
// sweeteners, trans-fat sources and a handful of named additives.
var badIngredientTable = []flagEntry{
	// Artificial colours
	{"E102 (Tartrazine)", []string{"e102", "tartrazine"}},
	{"E104 (Quinoline Yellow)", []string{"e104", "quinoline yellow"}},
	{"E110 (Sunset Yellow)", []string{"e110", "sunset yellow"}},
	{"E122 (Carmoisine)", []string{"e122", "carmoisine", "azorubine"}},
	{"E124 (Ponceau 4R)", []string{"e124", "ponceau"}},
	{"E129 (Allura Red)", []string{"e129", "allura red"}},
	{"E133 (Brilliant Blue)", []string{"e133", "brilliant blue"}},
	{"E142 (Green S)", []string{"e142", "green s"}},
	{"E151 (Brilliant Black)", []string{"e151", "brilliant black"}},
	{"E155 (Brown HT)", []string{"e155", "brown ht"}},
	// Preservatives
	{"E211 (Sodium Benzoate)", []string{"e211", "sodium benzoate"}},
	{"E212 (Potassium Benzoate)", []string{"e212", "potassium benzoate"}},
	{"E213 (Calcium Benzoate)", []string{"e213", "calcium benzoate"}},
	{"E220 (Sulphur Dioxide)", []string{"e220", "sulphur dioxide", "sulfur dioxide"}},
	{"E221 (Sodium Sulphite)", []string{"e221", "sodium sulphite", "sodium sulfite"}},
	{"E222 (Sodium Bisulphite)", []string{"e222", "sodium bisulphite"}},
	{"E223 (Sodium Metabisulphite)", []string{"e223", "sodium metabisulphite"}},
	{"E224 (Potassium Metabisulphite)", []string{"e224", "potassium metabisulphite"}},
	{"E249 (Potassium Nitrite)", []string{"e249", "potassium nitrite"}},
	{"E250 (Sodium Nitrite)", []string{"e250", "sodium nitrite"}},
	{"E251 (Sodium Nitrate)", []string{"e251", "sodium nitrate"}},
	{"E252 (Potassium Nitrate)", []string{"e252", "potassium nitrate"}},
	// Artificial sweeteners
	{"E951 (Aspartame)", []string{"e951", "aspartame"}},
	{"E954 (Saccharin)", []string{"e954", "saccharin"}},
	{"E950 (Acesulfame-K)", []string{"e950", "acesulfame"}},
	{"E955 (Sucralose)", []string{"e955", "sucralose"}},
	{"E952 (Cyclamate)", []string{"e952", "cyclamate"}},
	// Trans-fat sources
	{"Hydrogenated Oil", []string{"hydrogenated oil", "hydrogenated vegetable oil"}},
	{"Partially Hydrogenated Oil", []string{"partially hydrogenated"}},
	{"Vanaspati", []string{"vanaspati"}},
	// Other flagged additives
	{"High-Fructose Corn Syrup", []string{"high-fructose corn syrup", "high fructose corn syrup", "hfcs"}},
	{"MSG (E621)", []string{"e621", "monosodium glutamate", "msg"}},
	{"TBHQ (E319)", []string{"e319", "tbhq", "tertiary butylhydroquinone"}},
	{"BHA (E320)", []string{"e320", "bha", "butylated hydroxyanisole"}},
	{"BHT (E321)", []string{"e321", "bht", "butylated hydroxytoluene"}},
	{"Carrageenan (E407)", []string{"e407", "carrageenan"}},
}

// fssaiRestrictedTable lists additives restricted or banned by FSSAI for
// Indian consumers. These are flagged separately, in addition to any
// bad-table match.
var fssaiRestrictedTable = []flagEntry{
	{"Potassium Bromate (E924)", []string{"e924", "potassium bromate"}},
	{"Rhodamine B", []string{"rhodamine"}},
	{"Metanil Yellow (E105)", []string{"e105", "metanil yellow"}},
	{"Argemone Oil", []string{"argemone"}},
	{"Brominated Vegetable Oil (BVO)", []string{"brominated vegetable oil", "bvo"}},
	{"Coal Tar Dyes", []string{"coal tar"}},
}

// goodIngredientSynonyms recognises positive label content: whole grains
// and millets, nuts/seeds/legumes, fibre, vitamins, minerals,
// pro/prebiotics, omega-3, antioxidants and real fruit or vegetable.
var goodIngredientSynonyms = []string{
	"whole grain", "whole wheat", "oats", "millet", "ragi", "jowar",
	"bajra", "quinoa", "brown rice",
	"almond", "cashew", "walnut", "peanut", "nuts", "seeds", "flaxseed",
	"chia", "sesame", "lentil", "legume", "chickpea", "soy",
	"fibre", "fiber",
	"vitamin",
	"calcium", "iron", "zinc", "magnesium", "potassium iodide",
	"probiotic", "prebiotic", "inulin", "lactobacillus",
	"omega-3", "omega 3",
	"antioxidant",
	"real fruit", "fruit pulp", "fruit juice", "dried fruit", "vegetable",
	"spinach", "beetroot", "carrot", "tomato",
}

// IngredientFlags is the partition of a label's ingredient list into
// good, bad and FSSAI-restricted sets. An ingredient matching both the
// bad table and the FSSAI table appears in both.
type IngredientFlags struct {
	Good  []string
	Bad   []string
	FSSAI []string
}

// IngredientFlagger partitions ingredient tokens via case-insensitive
// synonym lookup against fixed reference tables. Pure and deterministic;
// only ingredients present in the input are ever reported.
type IngredientFlagger struct{}

// NewIngredientFlagger creates an ingredient flagger.
func NewIngredientFlagger() *IngredientFlagger {
	return &IngredientFlagger{}
}

// Flag scans the ordered ingredient list as transcribed from a label.
// The category is accepted for future category-specific rules but does
// not affect matching today.
func (f *IngredientFlagger) Flag(ingredients []string, category domain.Category) IngredientFlags {
	flags := IngredientFlags{
		Good:  []string{},
		Bad:   []string{},
		FSSAI: []string{},
	}

	seenBad := make(map[string]bool)
	seenFSSAI := make(map[string]bool)
	seenGood := make(map[string]bool)

	for _, raw := range ingredients {
		token := strings.ToLower(strings.TrimSpace(raw))
		if token == "" {
			continue
		}

		for _, entry := range badIngredientTable {
			if matchesEntry(token, entry) && !seenBad[entry.label] {
				flags.Bad = append(flags.Bad, entry.label)
				seenBad[entry.label] = true
			}
		}

		for _, entry := range fssaiRestrictedTable {
			if matchesEntry(token, entry) {
				if !seenFSSAI[entry.label] {
					flags.FSSAI = append(flags.FSSAI, entry.label)
					seenFSSAI[entry.label] = true
				}
				// FSSAI-restricted additives are also bad by definition.
				if !seenBad[entry.label] {
					flags.Bad = append(flags.Bad, entry.label)
					seenBad[entry.label] = true
				}
			}
		}

		for _, synonym := range goodIngredientSynonyms {
			if strings.Contains(token, synonym) {
				reported := strings.TrimSpace(raw)
				if !seenGood[reported] {
					flags.Good = append(flags.Good, reported)
					seenGood[reported] = true
				}
				break
			}
		}
	}

	return flags
}

// matchesEntry reports whether a lowercase ingredient token contains any
// synonym of the table entry. E-number synonyms must match as a discrete
// code ("e102" but not "e1021").
func matchesEntry(token string, entry flagEntry) bool {
	for _, synonym := range entry.synonyms {
		if isENumber(synonym) {
			if containsENumber(token, synonym) {
				return true
			}
			continue
		}
		if strings.Contains(token, synonym) {
			return true
		}
	}
	return false
}

// isENumber reports whether a synonym is an additive code like "e951".
func isENumber(s string) bool {
	if len(s) < 2 || s[0] != 'e' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// containsENumber finds the code in the token without matching longer
// codes that merely share a prefix.
func containsENumber(token, code string) bool {
	idx := 0
	for {
		i := strings.Index(token[idx:], code)
		if i < 0 {
			return false
		}
		pos := idx + i
		end := pos + len(code)
		// Preceding rune must not be alphanumeric ("ine951" is not a code).
		if pos > 0 && isAlphanumeric(token[pos-1]) {
			idx = end
			continue
		}
		// Following byte must not be another digit ("e1021" is not "e102").
		if end < len(token) && token[end] >= '0' && token[end] <= '9' {
			idx = end
			continue
		}
		return true
	}
}

func isAlphanumeric(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
