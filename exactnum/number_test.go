package exactnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Integer(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"positive":            {"42", "42"},
		"negative":            {"-42", "-42"},
		"zero":                {"0", "0"},
		"leading zeros":       {"007", "7"},
		"negative leading 0s": {"-007", "-7"},
		"explicit plus":       {"+5", "5"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.RatString())
		})
	}
}

func TestParse_Decimal(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"simple":                  {"1.5", "3/2"},
		"negative":                {"-1.5", "-3/2"},
		"trailing zero preserved": {"1.50", "3/2"},
		"leading zero fraction":   {"1.05", "21/20"},
		"zero integer part":       {"0.5", "1/2"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.RatString())
		})
	}
}

func TestParse_Ratio(t *testing.T) {
	n, err := Parse("1/2")
	require.NoError(t, err)
	assert.Equal(t, "1/2", n.RatString())

	n2, err := Parse("3/1")
	require.NoError(t, err)
	assert.Equal(t, "3", n2.RatString())

	n3, err := Parse("1.5/0.5")
	require.NoError(t, err)
	assert.Equal(t, "3", n3.RatString())
}

func TestParse_Errors(t *testing.T) {
	tests := []string{"", "1/2/3", "1..2", "abc", "1/", "/2"}
	for _, in := range tests {
		_, err := Parse(in)
		assert.Error(t, err, "input %q should fail to parse", in)
	}
}

func TestParse_VeryLongLiteral(t *testing.T) {
	long := "1234567890123456789012345" // 25 digits
	n, err := Parse(long)
	require.NoError(t, err)
	assert.Equal(t, long, n.RatString())
}

func TestArithmetic_Exactness(t *testing.T) {
	a, _ := Parse("1/3")
	b, _ := Parse("1/7")
	prod := a.Mul(b)
	back, err := prod.Div(b)
	require.NoError(t, err)
	assert.True(t, a.Equal(back))
}

func TestDivByZero(t *testing.T) {
	a := FromInt64(1)
	_, err := a.Div(Zero())
	require.Error(t, err)
	var arithErr *ArithmeticError
	assert.ErrorAs(t, err, &arithErr)
}

func TestCmpAndSign(t *testing.T) {
	a := FromInt64(-5)
	b := FromInt64(5)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
	assert.Equal(t, -1, a.Sign())
	assert.True(t, Zero().IsZero())
}

func TestFromFloat64IfIntegral(t *testing.T) {
	n, ok := FromFloat64IfIntegral(2.0)
	require.True(t, ok)
	assert.Equal(t, "2", n.RatString())

	_, ok = FromFloat64IfIntegral(2.5)
	assert.False(t, ok)
}
