package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		entity   string
		filter   string
		expected string
	}{
		{
			name:     "without filter",
			entity:   "quote",
			filter:   "",
			expected: "no quote available",
		},
		{
			name:     "with filter",
			entity:   "quote",
			filter:   "tag=stoic",
			expected: `no quote matching "tag=stoic"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.filter)

			assert.Equal(t, tt.expected, err.Error())
			assert.True(t, errors.Is(err, ErrNotFound))
			assert.True(t, IsNotFound(err))
			assert.False(t, IsUnavailable(err))
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("limit", "must be at most 200")

	assert.Equal(t, "validation failed for limit: must be at most 200", err.Error())
	assert.True(t, errors.Is(err, ErrValidation))
	assert.True(t, IsValidation(err))

	noField := NewValidationError("", "bad payload")
	assert.Equal(t, "validation failed: bad payload", noField.Error())
}

func TestUnavailableError(t *testing.T) {
	err := NewUnavailableError("mongodb", "not configured")

	assert.Equal(t, `service "mongodb" unavailable: not configured`, err.Error())
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, IsUnavailable(err))
	assert.False(t, IsNotFound(err))

	noReason := NewUnavailableError("mongodb", "")
	assert.Equal(t, `service "mongodb" unavailable`, noReason.Error())
}

func TestErrorWrapping(t *testing.T) {
	// Sentinels survive another layer of wrapping.
	err := fmt.Errorf("random quote: %w", NewNotFoundError("quote", ""))

	assert.True(t, IsNotFound(err))

	var nf *NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "quote", nf.Entity)
}
