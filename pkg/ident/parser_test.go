package ident_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tessella/sqldiag/pkg/ident"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single segment",
			input:    "tbl",
			expected: []string{"tbl"},
		},
		{
			name:     "dotted path",
			input:    "db.tbl.col",
			expected: []string{"db", "tbl", "col"},
		},
		{
			name:     "quoted segment",
			input:    "`tbl`",
			expected: []string{"tbl"},
		},
		{
			name:     "quoted segment containing dot",
			input:    "`a.b`.c",
			expected: []string{"a.b", "c"},
		},
		{
			name:     "doubled backtick unescapes",
			input:    "`a``b`",
			expected: []string{"a`b"},
		},
		{
			name:     "mixed quoted and plain",
			input:    "db.`my table`",
			expected: []string{"db", "my table"},
		},
		{
			name:     "segment with spaces",
			input:    "my db.tbl",
			expected: []string{"my db", "tbl"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := ident.ParsePath(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, parts)
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "empty input",
			input: "",
		},
		{
			name:  "empty segment",
			input: "a..b",
		},
		{
			name:  "leading dot",
			input: ".a",
		},
		{
			name:  "trailing dot",
			input: "a.",
		},
		{
			name:  "unterminated quote",
			input: "`a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ident.ParsePath(tt.input)
			require.Error(t, err)
			require.Contains(t, err.Error(), "invalid multipart identifier")
		})
	}
}

func TestParsePathRoundTrip(t *testing.T) {
	for _, parts := range [][]string{
		{"db", "tbl"},
		{"a.b", "c"},
		{"a`b"},
		{"my table", "col"},
	} {
		parsed, err := ident.ParsePath(ident.QuoteParts(parts...))
		require.NoError(t, err)
		require.Equal(t, parts, parsed)
	}
}
