// Package literal models typed scalar values and their canonical SQL literal
// serialization.
//
// Every Value knows its own sqltype descriptor, its raw text (String), and
// its standard SQL literal form (SQL). The literal forms follow the engine's
// conventions for typed literals:
//
//	literal.Int64(42).SQL()        // 42L
//	literal.Float64(1.5).SQL()     // 1.5D
//	literal.String("it's").SQL()   // 'it\'s'
//	literal.Binary{0xCA, 0xFE}.SQL() // X'CAFE'
//
// Serialization is deterministic and locale-independent; values are immutable
// once constructed.
package literal
