package domain

import "context"

// LabelReader defines the external vision capability that turns label
// pixels into structured data. It is the only non-deterministic step in
// the pipeline; everything downstream of it is pure computation.
type LabelReader interface {
	// ExtractNutrients reads the nutrition table, ingredients list and
	// expiry date from a label photo.
	ExtractNutrients(ctx context.Context, image []byte, mimeType string) (*ExtractionResult, error)

	// IdentifyProduct reads the product type and brand from a label photo.
	IdentifyProduct(ctx context.Context, image []byte, mimeType string) (*ProductIdentity, error)

	// ReadBrand reads only the brand name, for when the product category
	// is already known.
	ReadBrand(ctx context.Context, image []byte, mimeType string) (string, error)
}

// WebSearcher defines the external web search capability used to find
// alternative products. Results are ranked, finite and not restartable.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchSnippet, error)
}

// SessionRepository is a keyed store of per-session capture state.
// Writes to the same key are last-write-wins with read-after-write
// consistency; access to different keys must never interfere.
type SessionRepository interface {
	Get(ctx context.Context, key string) (*SessionRecord, error)
	Set(ctx context.Context, key string, record *SessionRecord) error
	Delete(ctx context.Context, key string) error
}
