package ident

import "strings"

// Quote wraps a single identifier segment in backticks. Backticks inside the
// segment are escaped by doubling, so the result is always a single valid
// quoted identifier.
//
// Examples:
//   - "users" -> "`users`"
//   - "my table" -> "`my table`"
func Quote(part string) string {
	return "`" + strings.ReplaceAll(part, "`", "``") + "`"
}

// QuoteParts quotes each segment of a multipart identifier and joins them
// with dots.
//
// Examples:
//   - ("db", "tbl") -> "`db`.`tbl`"
//   - ("col") -> "`col`"
func QuoteParts(parts ...string) string {
	quoted := make([]string, len(parts))
	for i, p := range parts {
		quoted[i] = Quote(p)
	}
	return strings.Join(quoted, ".")
}

// Unquote removes one level of backtick quoting from a single segment,
// collapsing doubled backticks. Unquoted input is returned unchanged.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '`' && s[len(s)-1] == '`' {
		return strings.ReplaceAll(s[1:len(s)-1], "``", "`")
	}
	return s
}
