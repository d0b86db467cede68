package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Kind:    MalformedInput,
			Message: "malformed JSON",
			Cause:   errors.New("unexpected end of JSON input"),
		}

		assert.Equal(t, "parse error: malformed input: malformed JSON: unexpected end of JSON input", err.Error())
	})

	t.Run("Error message with kind only", func(t *testing.T) {
		err := &ParseError{Kind: InvalidDocumentShape}
		assert.Equal(t, "parse error: invalid document shape", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Is matches sentinels by kind", func(t *testing.T) {
		malformed := &ParseError{Kind: MalformedInput}
		shape := &ParseError{Kind: InvalidDocumentShape}

		assert.ErrorIs(t, malformed, ErrParse)
		assert.ErrorIs(t, malformed, ErrMalformedInput)
		assert.NotErrorIs(t, malformed, ErrInvalidShape)

		assert.ErrorIs(t, shape, ErrParse)
		assert.ErrorIs(t, shape, ErrInvalidShape)
		assert.NotErrorIs(t, shape, ErrMalformedInput)
	})

	t.Run("As extracts ParseError through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading: %w", &ParseError{Kind: InvalidDocumentShape, Message: "missing paths"})

		var parseErr *ParseError
		require.ErrorAs(t, wrapped, &parseErr)
		assert.Equal(t, InvalidDocumentShape, parseErr.Kind)
		assert.Equal(t, "missing paths", parseErr.Message)
	})
}
