package literal_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tessella/sqldiag/pkg/literal"
	"github.com/tessella/sqldiag/pkg/sqltype"
)

func TestScalarSQL(t *testing.T) {
	tests := []struct {
		name     string
		value    literal.Value
		expected string
	}{
		{
			name:     "null",
			value:    literal.Null{},
			expected: "NULL",
		},
		{
			name:     "bool",
			value:    literal.Bool(true),
			expected: "true",
		},
		{
			name:     "tinyint",
			value:    literal.Int8(7),
			expected: "7Y",
		},
		{
			name:     "smallint",
			value:    literal.Int16(-7),
			expected: "-7S",
		},
		{
			name:     "int",
			value:    literal.Int32(7),
			expected: "7",
		},
		{
			name:     "bigint",
			value:    literal.Int64(7),
			expected: "7L",
		},
		{
			name:     "double",
			value:    literal.Float64(1.5),
			expected: "1.5D",
		},
		{
			name:     "float is cast",
			value:    literal.Float32(1.5),
			expected: "CAST(1.5 AS FLOAT)",
		},
		{
			name:     "plain string",
			value:    literal.String("abc"),
			expected: "'abc'",
		},
		{
			name:     "string with quote",
			value:    literal.String("it's"),
			expected: `'it\'s'`,
		},
		{
			name:     "string with backslash and newline",
			value:    literal.String("a\\b\nc"),
			expected: `'a\\b\nc'`,
		},
		{
			name:     "binary",
			value:    literal.Binary{0xCA, 0xFE},
			expected: "X'CAFE'",
		},
		{
			name:     "date",
			value:    literal.Date{Day: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
			expected: "DATE '2024-05-01'",
		},
		{
			name:     "timestamp",
			value:    literal.Timestamp{At: time.Date(2024, 5, 1, 13, 2, 3, 500000000, time.UTC)},
			expected: "TIMESTAMP '2024-05-01 13:02:03.5'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.value.SQL())
		})
	}
}

func TestNonFiniteFloats(t *testing.T) {
	nan32 := literal.Float32(float32(math.NaN()))
	require.Equal(t, "CAST('NaN' AS FLOAT)", nan32.SQL())

	nan64 := literal.Float64(math.NaN())
	require.Equal(t, "CAST('NaN' AS DOUBLE)", nan64.SQL())

	inf64 := literal.Float64(math.Inf(1))
	require.Equal(t, "CAST('+Inf' AS DOUBLE)", inf64.SQL())
}

func TestNewDecimal(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		sql       string
		precision int
		scale     int
	}{
		{
			name:      "integer",
			input:     "42",
			sql:       "42BD",
			precision: 2,
			scale:     0,
		},
		{
			name:      "fractional",
			input:     "2.50",
			sql:       "2.50BD",
			precision: 3,
			scale:     2,
		},
		{
			name:      "sub-one",
			input:     "0.05",
			sql:       "0.05BD",
			precision: 2,
			scale:     2,
		},
		{
			name:      "negative",
			input:     "-1.5",
			sql:       "-1.5BD",
			precision: 2,
			scale:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := literal.NewDecimal(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.sql, d.SQL())
			require.Equal(t, tt.precision, d.Precision)
			require.Equal(t, tt.scale, d.Scale)
		})
	}

	t.Run("invalid input", func(t *testing.T) {
		_, err := literal.NewDecimal("not a number")
		require.Error(t, err)
	})
}

func TestValueTypes(t *testing.T) {
	require.Equal(t, sqltype.Void, literal.Null{}.Type())
	require.Equal(t, sqltype.BigInt, literal.Int64(1).Type())
	require.Equal(t, sqltype.Double, literal.Float64(1).Type())
	require.Equal(t, "DECIMAL(3,2)", literal.Decimal{Precision: 3, Scale: 2}.Type().Name())
}
