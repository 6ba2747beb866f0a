package dto

import (
	"time"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Listing limits. Values outside [MinListLimit, MaxListLimit] are
// rejected at the boundary before reaching the application layer.
const (
	// DefaultListLimit is used when no limit is given.
	DefaultListLimit = 50

	// MinListLimit is the smallest accepted limit.
	MinListLimit = 1

	// MaxListLimit is the largest accepted limit.
	MaxListLimit = 200
)

// CreateQuoteRequest is the body of POST /api/quotes. Text must be
// present but is otherwise unchecked: an empty string passes, matching
// the boundary's type-coercion-only contract. Pointer fields distinguish
// absent from empty.
type CreateQuoteRequest struct {
	Text     *string  `json:"text"     validate:"required"`
	Author   *string  `json:"author"`
	Tags     []string `json:"tags"`
	Template *string  `json:"template"`
}

// TextValue returns the text, empty when the field was absent.
func (r *CreateQuoteRequest) TextValue() string {
	if r.Text == nil {
		return ""
	}

	return *r.Text
}

// AuthorValue returns the author, empty when the field was absent; the
// domain constructor substitutes the default.
func (r *CreateQuoteRequest) AuthorValue() string {
	if r.Author == nil {
		return ""
	}

	return *r.Author
}

// CreateQuoteResponse carries the storage-assigned identifier.
type CreateQuoteResponse struct {
	ID string `json:"id"`
}

// ListQuotesQuery holds the query parameters of GET /api/quotes.
type ListQuotesQuery struct {
	// Tag filters to records whose tags contain this exact value.
	Tag string `form:"tag"`

	// Limit caps the result count (1-200, default 50). A pointer so an
	// explicit zero is rejected rather than treated as absent.
	Limit *int `form:"limit" json:"limit" validate:"omitempty,gte=1,lte=200"`
}

// GetLimit returns the limit with the default applied.
func (q *ListQuotesQuery) GetLimit() int64 {
	if q.Limit == nil {
		return DefaultListLimit
	}

	return int64(*q.Limit)
}

// RandomQuoteQuery holds the query parameters of GET /api/quotes/random.
type RandomQuoteQuery struct {
	Tag string `form:"tag"`
}

// SerializeDocument converts a stored record into a JSON-safe mapping:
// the identifier appears under "id" in string form, timestamp values are
// rendered as ISO-8601 strings, and every other field passes through
// untouched. Pure; no side effects.
func SerializeDocument(doc domain.Document) map[string]any {
	out := make(map[string]any, len(doc.Fields)+1)

	for key, value := range doc.Fields {
		out[key] = jsonSafe(value)
	}

	if doc.ID != "" {
		out["id"] = doc.ID
	}

	return out
}

// SerializeDocuments maps SerializeDocument over a result set, always
// returning a non-nil slice so empty lists encode as [].
func SerializeDocuments(docs []domain.Document) []map[string]any {
	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		out = append(out, SerializeDocument(doc))
	}

	return out
}

// jsonSafe renders timestamps as ISO-8601 strings, descending into
// slices and nested maps.
func jsonSafe(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.Format(time.RFC3339Nano)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = jsonSafe(item)
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = jsonSafe(item)
		}

		return out
	default:
		return v
	}
}
