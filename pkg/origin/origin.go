package origin

import (
	"fmt"
	"strings"
)

// Context pinpoints the portion of a query that triggered a diagnostic. It
// carries the full query text and the inclusive [Start, Stop] byte range of
// the offending fragment, plus an optional description of the containing
// object (a view, a generated column, etc.).
type Context struct {
	// ObjectType is the kind of object the query text belongs to, such as
	// "VIEW". Empty when the text was submitted directly.
	ObjectType string

	// ObjectName is the qualified name of that object. Empty when the text
	// was submitted directly.
	ObjectName string

	// Start and Stop are inclusive byte offsets of the fragment within Text.
	Start int
	Stop  int

	// Text is the complete query text.
	Text string
}

// Valid reports whether the context carries a usable fragment range.
func (c *Context) Valid() bool {
	return c != nil && c.Text != "" && c.Start >= 0 && c.Stop >= c.Start && c.Stop < len(c.Text)
}

// Fragment returns the offending portion of the query text, or "" when the
// context is not valid.
func (c *Context) Fragment() string {
	if !c.Valid() {
		return ""
	}
	return c.Text[c.Start : c.Stop+1]
}

// Summary renders the human-readable block appended to diagnostics. It names
// the containing object when known, reports the 1-based line and position of
// the fragment, and underlines the fragment within the lines it spans:
//
//	== SQL of VIEW `db`.`v1`(line 1, position 8) ==
//	SELECT a / 0 FROM t
//	       ^^^^^
//
// An invalid context summarizes to the empty string.
func (c *Context) Summary() string {
	if !c.Valid() {
		return ""
	}

	line, pos := c.position()

	var b strings.Builder
	b.WriteString("== SQL")
	if c.ObjectType != "" {
		fmt.Fprintf(&b, " of %s", c.ObjectType)
		if c.ObjectName != "" {
			fmt.Fprintf(&b, " %s", c.ObjectName)
		}
	}
	fmt.Fprintf(&b, "(line %d, position %d) ==\n", line, pos)

	offset := 0
	for _, text := range strings.Split(c.Text, "\n") {
		end := offset + len(text) // exclusive, excludes the newline
		if end > c.Start && offset <= c.Stop {
			b.WriteString(text)
			b.WriteByte('\n')
			b.WriteString(underline(text, offset, c.Start, c.Stop))
			b.WriteByte('\n')
		}
		offset = end + 1
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// position returns the 1-based line and column of the fragment start.
func (c *Context) position() (line, pos int) {
	line, pos = 1, 1
	for _, ch := range c.Text[:c.Start] {
		if ch == '\n' {
			line++
			pos = 1
		} else {
			pos++
		}
	}
	return line, pos
}

// underline builds the caret line for one line of query text beginning at
// byte offset within the full text.
func underline(text string, offset, start, stop int) string {
	from := start - offset
	if from < 0 {
		from = 0
	}
	to := stop - offset
	if to > len(text)-1 {
		to = len(text) - 1
	}
	return strings.Repeat(" ", from) + strings.Repeat("^", to-from+1)
}
