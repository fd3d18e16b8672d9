// Package sqltype defines the type descriptors referenced by diagnostic
// messages.
//
// A descriptor is one of three variants:
//
//   - Primitive: a concrete type carrying its canonical SQL name
//   - AnyOf: a disjunction of candidate types ("INT or STRING")
//   - Abstract: a type family with no single concrete form ("numeric")
//
// The set is closed so that consumers can switch over the variants
// exhaustively. Scalar types are predeclared singletons; parameterized types
// are built with Decimal, Array, and Map.
//
// Example:
//
//	t := sqltype.OneOf(sqltype.Int, sqltype.String)
//	fmt.Println(t.Name()) // (INT or STRING)
package sqltype
