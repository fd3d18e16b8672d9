package ident

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// pathLexer tokenizes multipart identifiers. Quoted segments use doubled
	// backticks as the escape for a literal backtick.
	pathLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Quoted", Pattern: "`(?:``|[^`])*`"},
		{Name: "Dot", Pattern: `\.`},
		{Name: "Plain", Pattern: "[^.`]+"},
	})

	pathParser = participle.MustBuild[path](
		participle.Lexer(pathLexer),
	)
)

type (
	path struct {
		Segments []*segment `parser:"@@ ( '.' @@ )*"`
	}

	segment struct {
		Quoted string `parser:"@Quoted"`
		Plain  string `parser:"| @Plain"`
	}
)

// ParsePath splits a dotted multipart identifier into its segments. Segments
// may be backtick-quoted, in which case dots inside them do not split and
// doubled backticks denote a literal backtick.
//
// Examples:
//   - "db.tbl" -> ["db", "tbl"]
//   - "`a.b`.c" -> ["a.b", "c"]
//
// Malformed input (empty string, empty segments, unterminated quotes) returns
// an error.
func ParsePath(s string) ([]string, error) {
	p, err := pathParser.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid multipart identifier %q", s)
	}

	parts := make([]string, len(p.Segments))
	for i, seg := range p.Segments {
		if seg.Quoted != "" {
			parts[i] = Unquote(seg.Quoted)
		} else {
			parts[i] = seg.Plain
		}
	}
	return parts, nil
}
