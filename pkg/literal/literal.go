package literal

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tessella/sqldiag/pkg/sqltype"
)

// Value is a typed scalar carrying its own canonical SQL serialization.
// String returns the raw text of the value; SQL returns its standard SQL
// literal form, suitable for embedding in generated statements and
// diagnostics.
type Value interface {
	Type() sqltype.Type
	String() string
	SQL() string
}

type (
	// Null is the SQL NULL value.
	Null struct{}

	// Bool is a BOOLEAN value.
	Bool bool

	// Int8 is a TINYINT value.
	Int8 int8

	// Int16 is a SMALLINT value.
	Int16 int16

	// Int32 is an INT value.
	Int32 int32

	// Int64 is a BIGINT value.
	Int64 int64

	// Float32 is a single-precision FLOAT value.
	Float32 float32

	// Float64 is a double-precision DOUBLE value.
	Float64 float64

	// String is a STRING value.
	String string

	// Binary is a BINARY value.
	Binary []byte

	// Date is a DATE value at day precision.
	Date struct{ Day time.Time }

	// Timestamp is a TIMESTAMP value at microsecond precision.
	Timestamp struct{ At time.Time }

	// Decimal is a fixed-point DECIMAL value with explicit precision and
	// scale.
	Decimal struct {
		Dec       decimal.Decimal
		Precision int
		Scale     int
	}
)

func (Null) Type() sqltype.Type { return sqltype.Void }
func (Null) String() string     { return "NULL" }
func (Null) SQL() string        { return "NULL" }

func (v Bool) Type() sqltype.Type { return sqltype.Boolean }
func (v Bool) String() string     { return strconv.FormatBool(bool(v)) }
func (v Bool) SQL() string        { return v.String() }

func (v Int8) Type() sqltype.Type { return sqltype.TinyInt }
func (v Int8) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Int8) SQL() string        { return v.String() + "Y" }

func (v Int16) Type() sqltype.Type { return sqltype.SmallInt }
func (v Int16) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Int16) SQL() string        { return v.String() + "S" }

func (v Int32) Type() sqltype.Type { return sqltype.Int }
func (v Int32) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Int32) SQL() string        { return v.String() }

func (v Int64) Type() sqltype.Type { return sqltype.BigInt }
func (v Int64) String() string     { return strconv.FormatInt(int64(v), 10) }
func (v Int64) SQL() string        { return v.String() + "L" }

func (v Float32) Type() sqltype.Type { return sqltype.Float }

func (v Float32) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

// SQL wraps the value in an explicit cast so it is not read back as a DOUBLE.
// Non-finite values have no bare literal form and are cast from their string
// representation.
func (v Float32) SQL() string {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "CAST('" + v.String() + "' AS FLOAT)"
	}
	return "CAST(" + v.String() + " AS FLOAT)"
}

func (v Float64) Type() sqltype.Type { return sqltype.Double }

func (v Float64) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v Float64) SQL() string {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "CAST('" + v.String() + "' AS DOUBLE)"
	}
	return v.String() + "D"
}

func (v String) Type() sqltype.Type { return sqltype.String }
func (v String) String() string     { return string(v) }

func (v String) SQL() string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range string(v) {
		switch r {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

func (v Binary) Type() sqltype.Type { return sqltype.Binary }
func (v Binary) String() string     { return strings.ToUpper(hex.EncodeToString(v)) }
func (v Binary) SQL() string        { return "X'" + v.String() + "'" }

func (v Date) Type() sqltype.Type { return sqltype.Date }
func (v Date) String() string     { return v.Day.Format(time.DateOnly) }
func (v Date) SQL() string        { return "DATE '" + v.String() + "'" }

func (v Timestamp) Type() sqltype.Type { return sqltype.Timestamp }

func (v Timestamp) String() string {
	return v.At.Format("2006-01-02 15:04:05.999999")
}

func (v Timestamp) SQL() string { return "TIMESTAMP '" + v.String() + "'" }

func (v Decimal) Type() sqltype.Type { return sqltype.Decimal(v.Precision, v.Scale) }
func (v Decimal) String() string     { return v.Dec.StringFixed(int32(v.Scale)) }
func (v Decimal) SQL() string        { return v.String() + "BD" }

// NewDecimal builds a Decimal value from its textual form, deriving precision
// and scale from the digits present.
func NewDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, err
	}

	scale := 0
	if exp := d.Exponent(); exp < 0 {
		scale = int(-exp)
	}

	digits := len(strings.TrimLeft(d.Coefficient().String(), "-"))
	if digits < scale {
		digits = scale
	}

	return Decimal{Dec: d, Precision: digits, Scale: scale}, nil
}
