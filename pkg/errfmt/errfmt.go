package errfmt

import (
	"math"
	"strings"

	"github.com/tessella/sqldiag/pkg/ident"
	"github.com/tessella/sqldiag/pkg/literal"
	"github.com/tessella/sqldiag/pkg/origin"
	"github.com/tessella/sqldiag/pkg/sqltype"
)

// AutoGeneratedSubqueryName is the reserved name the analyzer assigns to
// subqueries the user never named. It is stripped from identifier paths
// before they are shown, since it means nothing to the user.
const AutoGeneratedSubqueryName = "__auto_generated_subquery_name"

// Expression is any expression that can render its canonical SQL text.
type Expression interface {
	PrettySQL() string
}

// Value formats a scalar value as it should appear in a diagnostic. NULL and
// the non-finite floating-point values have a fixed vocabulary of their own;
// everything else uses the value's canonical SQL literal form.
//
// Floats are special-cased here because their literal form wraps non-finite
// values in casts (CAST('NaN' AS DOUBLE)), which is not the wording users
// should see.
func Value(v literal.Value) string {
	switch f := v.(type) {
	case nil:
		return "NULL"
	case literal.Null:
		return "NULL"
	case literal.Float32:
		if s, ok := nonFinite(float64(f)); ok {
			return s
		}
		return f.String()
	case literal.Float64:
		if s, ok := nonFinite(float64(f)); ok {
			return s
		}
		return f.SQL()
	default:
		return v.SQL()
	}
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "NaN", true
	case math.IsInf(f, 1):
		return "Infinity", true
	case math.IsInf(f, -1):
		return "-Infinity", true
	default:
		return "", false
	}
}

// Type formats a type descriptor. Disjunctions format each candidate and join
// them with "or"; concrete types show their canonical SQL name; abstract
// families show their name upper-cased.
func Type(t sqltype.Type) string {
	switch tt := t.(type) {
	case *sqltype.AnyOf:
		names := make([]string, len(tt.Types))
		for i, m := range tt.Types {
			names[i] = Type(m)
		}
		return "(" + strings.Join(names, " or ") + ")"
	case *sqltype.Primitive:
		return doubleQuote(tt.Name())
	case *sqltype.Abstract:
		return doubleQuote(strings.ToUpper(tt.Name()))
	default:
		return doubleQuote(strings.ToUpper(t.Name()))
	}
}

// TypeName formats a raw type name without resolving it to a descriptor.
func TypeName(name string) string {
	return doubleQuote(strings.ToUpper(name))
}

// Identifier formats a multipart identifier, backtick-quoting each segment.
// A leading auto-generated subquery name is dropped when further segments
// remain; alone it is kept, as there would be nothing left to show.
func Identifier(parts []string) string {
	if len(parts) > 1 && parts[0] == AutoGeneratedSubqueryName {
		parts = parts[1:]
	}
	return ident.QuoteParts(parts...)
}

// IdentifierString formats a dotted identifier string. Parse failures are
// returned to the caller as-is.
func IdentifierString(s string) (string, error) {
	parts, err := ident.ParsePath(s)
	if err != nil {
		return "", err
	}
	return Identifier(parts), nil
}

// Statement formats a statement or clause keyword. Keywords are upper-cased
// and never quoted.
func Statement(s string) string {
	return strings.ToUpper(s)
}

// Conf formats a configuration key name.
func Conf(key string) string { return doubleQuote(key) }

// ConfValue formats a configuration value.
func ConfValue(value string) string { return doubleQuote(value) }

// DSOption formats a datasource option name.
func DSOption(option string) string { return doubleQuote(option) }

// Schema formats schema text.
func Schema(schema string) string { return doubleQuote(schema) }

// Expr formats an expression by double-quoting its canonical SQL text.
func Expr(e Expression) string {
	return doubleQuote(e.PrettySQL())
}

// Summary returns the query context's summary block, or "" when there is no
// context.
func Summary(c *origin.Context) string {
	if c == nil {
		return ""
	}
	return c.Summary()
}

// Contexts returns a zero-or-one-element view of the context for callers
// that iterate over all contexts attached to a diagnostic.
func Contexts(c *origin.Context) []*origin.Context {
	if c == nil {
		return nil
	}
	return []*origin.Context{c}
}

// doubleQuote backs Conf, ConfValue, DSOption, Schema, and Expr: one quoting
// contract, four semantic labels. Case is preserved and nothing is escaped;
// application is single-shot, so already-quoted input would be quoted again.
func doubleQuote(s string) string {
	return `"` + s + `"`
}
