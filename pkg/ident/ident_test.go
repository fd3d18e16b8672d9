package ident_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tessella/sqldiag/pkg/ident"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple identifier",
			input:    "users",
			expected: "`users`",
		},
		{
			name:     "identifier with spaces",
			input:    "my table",
			expected: "`my table`",
		},
		{
			name:     "identifier with dot",
			input:    "a.b",
			expected: "`a.b`",
		},
		{
			name:     "embedded backtick is doubled",
			input:    "a`b",
			expected: "`a``b`",
		},
		{
			name:     "empty segment",
			input:    "",
			expected: "``",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ident.Quote(tt.input))
		})
	}
}

func TestQuoteParts(t *testing.T) {
	require.Equal(t, "`db`.`tbl`.`col`", ident.QuoteParts("db", "tbl", "col"))
	require.Equal(t, "`col`", ident.QuoteParts("col"))
	require.Equal(t, "", ident.QuoteParts())
}

func TestUnquote(t *testing.T) {
	require.Equal(t, "users", ident.Unquote("`users`"))
	require.Equal(t, "users", ident.Unquote("users"))
	require.Equal(t, "a`b", ident.Unquote("`a``b`"))
	require.Equal(t, "", ident.Unquote("``"))
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	for _, s := range []string{"users", "my table", "a`b", "a``b", "`"} {
		require.Equal(t, s, ident.Unquote(ident.Quote(s)))
	}
}
