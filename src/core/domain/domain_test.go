package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeInput(t *testing.T) {
	got, err := NormalizeInput("  Hi!\n")
	require.NoError(t, err)
	assert.Equal(t, "Hi!", got)

	for _, blank := range []string{"", " ", "\t\r\n", "　"} {
		_, err := NormalizeInput(blank)
		require.Error(t, err, "input %q", blank)
		assert.True(t, IsEmptyInput(err))
		assert.Equal(t, EmptyInputMessage, UserMessage(err))
	}
}

func TestDomainError(t *testing.T) {
	err := NewEmptyInputError("text")
	assert.Equal(t, "empty input: 文本不能为空 (field: text)", err.Error())
	assert.True(t, errors.Is(err, ErrEmptyInput))
	assert.False(t, IsValidationError(err))

	wrapped := fmt.Errorf("convert: %w", err)
	assert.True(t, IsEmptyInput(wrapped))
	assert.Equal(t, EmptyInputMessage, UserMessage(wrapped))

	inv := NewValidationError("bits", "out of range")
	assert.True(t, IsValidationError(inv))
	assert.False(t, IsEmptyInput(inv))
	assert.Equal(t, "invalid input: out of range (field: bits)", inv.Error())
	assert.Equal(t, "out of range", UserMessage(inv))

	plain := errors.New("boom")
	assert.Equal(t, "boom", UserMessage(plain))
}

func TestConversionRunes(t *testing.T) {
	c := Conversion{Input: "中A"}
	assert.Equal(t, 2, c.Runes())
}
