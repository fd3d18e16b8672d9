// Package errfmt renders values, types, identifiers, and other fragments
// into the single canonical form used across the engine's diagnostic
// messages.
//
// Every function is a pure, stateless transformation, safe for concurrent
// use. Each one is meant to be applied exactly once per fragment by the
// message assembler; none of them detect or strip prior quoting.
//
// The quoting conventions:
//
//	errfmt.Value(literal.Float64(math.NaN())) // NaN
//	errfmt.Type(sqltype.Int)                  // "INT"
//	errfmt.TypeName("corrected")              // "CORRECTED"
//	errfmt.Identifier([]string{"db", "t"})    // `db`.`t`
//	errfmt.Statement("desc partition")        // DESC PARTITION
//	errfmt.Conf("engine.ansi.enabled")        // "engine.ansi.enabled"
//
// The package defines no errors of its own. IdentifierString surfaces the
// identifier parser's errors unchanged; everything else is total.
package errfmt
