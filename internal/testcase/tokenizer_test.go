package testcase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected []string
	}{
		{name: "empty spec", spec: "", expected: []string{}},
		{name: "special and ordinary tokens", spec: "[foo][.][!throws]", expected: []string{"foo", ".", "!throws"}},
		{name: "text between groups is ignored", spec: "abc[foo] x [bar]y", expected: []string{"foo", "bar"}},
		{name: "empty group", spec: "[]", expected: []string{""}},
		{name: "spaces are kept inside a token", spec: "[slow test]", expected: []string{"slow test"}},
		{name: "duplicates are preserved", spec: "[a][a]", expected: []string{"a", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		spec   string
		offset int
	}{
		{name: "unterminated group", spec: "[foo", offset: 0},
		{name: "unterminated second group", spec: "[a][b", offset: 3},
		{name: "nested open bracket", spec: "[a[b]]", offset: 2},
		{name: "stray close bracket", spec: "a]", offset: 1},
		{name: "close bracket after group", spec: "[a]]", offset: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.spec)
			require.Error(t, err)
			assert.Nil(t, tokens)
			assert.True(t, errors.Is(err, ErrParse))

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.offset, pe.Offset)
			assert.Equal(t, tt.spec, pe.Spec)
		})
	}
}
