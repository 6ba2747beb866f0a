// Package domain contains core business entities and rules.
package domain

import "time"

// DefaultAuthor is used when a quote is created without an author.
const DefaultAuthor = "Unknown"

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier, assigned by the storage layer on insert
	// and never mutated afterwards.
	ID string

	// Text is the content of the quote.
	Text string

	// Author is who said or wrote the quote.
	Author string

	// Tags are short labels used for filtering. Order is preserved and
	// duplicates are not removed.
	Tags []string

	// Template is a free-form optional field. Nil means absent.
	Template *string

	// CreatedAt is set by the storage layer at insert time.
	CreatedAt time.Time
}

// NewQuote builds a quote candidate with creation defaults applied:
// a missing author becomes DefaultAuthor and missing tags become an
// empty slice. Text is taken as given; the boundary layer only requires
// its presence, not any particular content.
func NewQuote(text, author string, tags []string, template *string) Quote {
	if author == "" {
		author = DefaultAuthor
	}

	if tags == nil {
		tags = []string{}
	}

	return Quote{
		Text:     text,
		Author:   author,
		Tags:     tags,
		Template: template,
	}
}

// HasTag reports whether the quote carries the given tag (exact match).
func (q Quote) HasTag(tag string) bool {
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}

	return false
}

// Document is the read model for a stored record: the storage-assigned
// identifier plus the remaining fields as an opaque mapping. Timestamp
// values in Fields are decoded to time.Time by the storage adapter;
// everything else is kept as-is. This keeps serialization total and
// type-safe instead of poking at raw driver documents.
type Document struct {
	// ID is the storage identifier in its string form.
	ID string

	// Fields holds every field except the identifier.
	Fields map[string]any
}
