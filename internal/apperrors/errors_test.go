// Package apperrors tests verify the custom error types (ErrUnknownOption,
// ErrInvalidValue, ErrReadOnlyOption, ErrUnknownProvider), their Error()
// messages, Is() matching semantics, and compatibility with errors.Is()
// including through fmt.Errorf wrapping.
package apperrors

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestErrors_Error(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "unknown option",
			err:      NewUnknownOptionError("theme"),
			expected: `unknown option "theme"`,
		},
		{
			name:     "invalid value without cause",
			err:      NewInvalidValueError("download_media", "maybe", nil),
			expected: `invalid value "maybe" for option "download_media"`,
		},
		{
			name:     "invalid value with cause",
			err:      NewInvalidValueError("font_size_adjustment", "big", errors.New("boom")),
			expected: `invalid value "big" for option "font_size_adjustment": boom`,
		},
		{
			name:     "read-only option",
			err:      NewReadOnlyOptionError("lock_timeout"),
			expected: `option "lock_timeout" is read-only`,
		},
		{
			name:     "unknown provider",
			err:      &ErrUnknownProvider{Name: "etcd", Registered: []string{"memory", "redis"}},
			expected: `storage: unknown provider "etcd" (registered: [memory redis])`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrors_Is(t *testing.T) {
	t.Parallel()

	t.Run("matches regardless of field values", func(t *testing.T) {
		if !errors.Is(NewUnknownOptionError("a"), &ErrUnknownOption{Key: "b"}) {
			t.Error("expected errors.Is to match *ErrUnknownOption")
		}
		if !errors.Is(NewReadOnlyOptionError("a"), &ErrReadOnlyOption{}) {
			t.Error("expected errors.Is to match *ErrReadOnlyOption")
		}
		if !errors.Is(&ErrUnknownProvider{Name: "x"}, &ErrUnknownProvider{}) {
			t.Error("expected errors.Is to match *ErrUnknownProvider")
		}
	})

	t.Run("does not cross-match kinds", func(t *testing.T) {
		if errors.Is(NewUnknownOptionError("a"), &ErrReadOnlyOption{}) {
			t.Error("expected *ErrUnknownOption not to match *ErrReadOnlyOption")
		}
		if errors.Is(NewReadOnlyOptionError("a"), &ErrInvalidValue{}) {
			t.Error("expected *ErrReadOnlyOption not to match *ErrInvalidValue")
		}
	})

	t.Run("matches through fmt.Errorf wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("set option: %w", NewReadOnlyOptionError("lock_timeout"))
		if !errors.Is(wrapped, &ErrReadOnlyOption{}) {
			t.Error("expected wrapped error to match *ErrReadOnlyOption")
		}
	})
}

func TestErrInvalidValue_Unwrap(t *testing.T) {
	t.Parallel()
	_, parseErr := strconv.ParseBool("maybe")
	err := NewInvalidValueError("download_media", "maybe", parseErr)

	if !errors.Is(err, strconv.ErrSyntax) {
		t.Error("expected errors.Is to reach the underlying strconv.ErrSyntax")
	}

	var target *ErrInvalidValue
	if !errors.As(fmt.Errorf("wrap: %w", err), &target) {
		t.Fatal("expected errors.As to find *ErrInvalidValue")
	}
	if target.Key != "download_media" || target.Value != "maybe" {
		t.Errorf("unexpected fields: %+v", target)
	}
}
