package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote_Defaults(t *testing.T) {
	q := NewQuote("Stay hungry.", "", nil, nil)

	assert.Equal(t, "Stay hungry.", q.Text)
	assert.Equal(t, DefaultAuthor, q.Author)
	assert.Equal(t, []string{}, q.Tags)
	assert.Nil(t, q.Template)
	assert.Empty(t, q.ID)
	assert.True(t, q.CreatedAt.IsZero())
}

func TestNewQuote_ExplicitFields(t *testing.T) {
	tmpl := "fortune-cookie"
	q := NewQuote("Text", "Seneca", []string{"stoic", "stoic"}, &tmpl)

	assert.Equal(t, "Seneca", q.Author)
	// duplicates are kept, order preserved
	assert.Equal(t, []string{"stoic", "stoic"}, q.Tags)
	assert.NotNil(t, q.Template)
	assert.Equal(t, "fortune-cookie", *q.Template)
}

func TestNewQuote_EmptyTextAccepted(t *testing.T) {
	// The boundary requires the field to be present, not non-empty.
	q := NewQuote("", "", nil, nil)
	assert.Empty(t, q.Text)
	assert.Equal(t, DefaultAuthor, q.Author)
}

func TestQuote_HasTag(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		tag      string
		expected bool
	}{
		{name: "present", tags: []string{"a", "b"}, tag: "a", expected: true},
		{name: "absent", tags: []string{"a", "b"}, tag: "c", expected: false},
		{name: "exact match only", tags: []string{"ab"}, tag: "a", expected: false},
		{name: "nil tags", tags: nil, tag: "a", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Quote{Tags: tt.tags}
			assert.Equal(t, tt.expected, q.HasTag(tt.tag))
		})
	}
}
