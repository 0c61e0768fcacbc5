package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(CodeNotFound, "user not found")
	assert.Equal(t, "not_found: user not found", plain.Error())

	wrapped := Wrap(errors.New("dial tcp: refused"), CodeUnavailable, "store unreachable")
	assert.Equal(t, "unavailable: store unreachable: dial tcp: refused", wrapped.Error())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("row not found")
	err := Wrap(cause, CodeNotFound, "credential record not found")

	assert.ErrorIs(t, err, cause)
	assert.True(t, HasCode(err, CodeNotFound))
	assert.False(t, HasCode(err, CodeInternal))
}

func TestHasCodeThroughWrapping(t *testing.T) {
	inner := New(CodeUnsupported, "operation not supported")
	outer := fmt.Errorf("selecting backend: %w", inner)

	assert.True(t, HasCode(outer, CodeUnsupported))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeInvalidInput, CodeOf(New(CodeInvalidInput, "bad id")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("unclassified")))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "bad id", MessageOf(New(CodeInvalidInput, "bad id")))

	// Unclassified errors must not leak their text.
	assert.Equal(t, "internal error", MessageOf(errors.New("pq: syntax error at line 3")))
}
