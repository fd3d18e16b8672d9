package sqltype

import (
	"fmt"
	"strings"
)

type (
	// Type describes a SQL data type as it appears in diagnostic messages.
	// It is a closed set of variants: Primitive for concrete types, AnyOf for
	// a disjunction of candidate types, and Abstract for type families that
	// have no single concrete representation.
	Type interface {
		// Name returns the display name of the type. Primitive types return
		// their canonical SQL name (e.g. "INT", "DECIMAL(10,2)"); abstract
		// families return their lower-case simple name (e.g. "numeric").
		Name() string

		sealed()
	}

	// Primitive is a concrete SQL type with a canonical name.
	Primitive struct {
		name string
	}

	// AnyOf is an ordered disjunction of candidate types, used when an
	// operation accepts more than one input type.
	AnyOf struct {
		Types []Type
	}

	// Abstract is a type family without a concrete SQL name, such as the
	// family of all numeric types.
	Abstract struct {
		name string
	}
)

// Concrete scalar types, named by their canonical SQL type name.
var (
	Boolean   = &Primitive{name: "BOOLEAN"}
	TinyInt   = &Primitive{name: "TINYINT"}
	SmallInt  = &Primitive{name: "SMALLINT"}
	Int       = &Primitive{name: "INT"}
	BigInt    = &Primitive{name: "BIGINT"}
	Float     = &Primitive{name: "FLOAT"}
	Double    = &Primitive{name: "DOUBLE"}
	String    = &Primitive{name: "STRING"}
	Binary    = &Primitive{name: "BINARY"}
	Date      = &Primitive{name: "DATE"}
	Timestamp = &Primitive{name: "TIMESTAMP"}
	Void      = &Primitive{name: "VOID"}
)

// Abstract type families.
var (
	Numeric  = &Abstract{name: "numeric"}
	Integral = &Abstract{name: "integral"}
	Datetime = &Abstract{name: "datetime"}
)

// Decimal returns the concrete decimal type with the given precision and scale.
func Decimal(precision, scale int) *Primitive {
	return &Primitive{name: fmt.Sprintf("DECIMAL(%d,%d)", precision, scale)}
}

// Array returns the concrete array type over the given element type.
func Array(element Type) *Primitive {
	return &Primitive{name: "ARRAY<" + element.Name() + ">"}
}

// Map returns the concrete map type over the given key and value types.
func Map(key, value Type) *Primitive {
	return &Primitive{name: "MAP<" + key.Name() + ", " + value.Name() + ">"}
}

// OneOf builds a disjunction of the given candidate types.
func OneOf(types ...Type) *AnyOf {
	return &AnyOf{Types: types}
}

func (p *Primitive) Name() string { return p.name }
func (p *Primitive) sealed()      {}

func (a *AnyOf) Name() string {
	names := make([]string, len(a.Types))
	for i, t := range a.Types {
		names[i] = t.Name()
	}
	return "(" + strings.Join(names, " or ") + ")"
}
func (a *AnyOf) sealed() {}

func (a *Abstract) Name() string { return a.name }
func (a *Abstract) sealed()      {}
