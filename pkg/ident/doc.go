// Package ident provides backtick quoting and parsing for SQL identifiers.
//
// Identifiers are quoted with backticks, and a literal backtick inside a
// segment is escaped by doubling it. Multipart identifiers join quoted
// segments with dots:
//
//	ident.Quote("my col")              // `my col`
//	ident.QuoteParts("db", "tbl")      // `db`.`tbl`
//	ident.ParsePath("`a.b`.c")         // ["a.b", "c"]
//
// ParsePath is the inverse of QuoteParts for well-formed input; it performs
// no validation beyond tokenization.
package ident
