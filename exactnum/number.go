// Package exactnum provides Number, an arbitrary-precision rational field
// element used throughout the verifier so that every geometric predicate and
// Boolean set operation is computed without rounding.
//
// Number wraps [math/big.Rat], which already maintains the canonical-sign,
// gcd-reduced, positive-denominator invariants the verifier requires; this
// package adds the literal-parsing rules (decimal strings, ratio strings,
// {num,den} structures) that the JSON adapters need, and a narrower,
// verifier-shaped API surface than big.Rat's.
//
// No floating-point value ever enters a Number implicitly: the only way to
// get a Number from a float is [FromFloat64IfIntegral], which rejects any
// float with a fractional part.
package exactnum

import (
	"math/big"
	"strings"
)

// Number is an immutable value in ℚ.
type Number struct {
	r big.Rat
}

// Zero is the additive identity.
func Zero() Number {
	return Number{}
}

// One is the multiplicative identity.
func One() Number {
	var n Number
	n.r.SetInt64(1)
	return n
}

// FromInt64 constructs a Number from a machine integer.
func FromInt64(v int64) Number {
	var n Number
	n.r.SetInt64(v)
	return n
}

// FromBigInt constructs a Number equal to v.
func FromBigInt(v *big.Int) Number {
	var n Number
	n.r.SetInt(v)
	return n
}

// FromRatio constructs the Number num/den. It fails with an *ArithmeticError
// if den is zero.
func FromRatio(num, den Number) (Number, error) {
	return num.Div(den)
}

// FromFloat64IfIntegral converts f to a Number, but only if f has no
// fractional part (e.g. 2.0, -5.0). This is the only floating-point entry
// point into the exact core: implicit float-to-rational conversion is
// forbidden, so a non-integral float is rejected rather than silently
// rounded.
func FromFloat64IfIntegral(f float64) (Number, bool) {
	if f != float64(int64(f)) {
		// still might be integral but outside int64 range; fall back to big.Float
		bf := new(big.Float).SetFloat64(f)
		bi, acc := bf.Int(nil)
		if acc != big.Exact {
			return Number{}, false
		}
		return FromBigInt(bi), true
	}
	return FromInt64(int64(f)), true
}

// stripLeadingZeros removes leading zero digits from the integer part s
// (after an optional sign), leaving a single "0" if s is all zeros. It never
// touches anything but the integer part of a literal: a decimal's fractional
// part keeps every digit because its length determines the denominator.
func stripLeadingZeros(s string) string {
	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if s == "0" {
		sign = ""
	}
	return sign + s
}

// parseIntegerLiteral parses a (sign-optional, leading-zero-stripped) base-10
// integer literal into a Number.
func parseIntegerLiteral(s string) (Number, error) {
	if s == "" {
		return Number{}, &ParseError{Input: s, Msg: "empty literal"}
	}
	s = stripLeadingZeros(s)

	bi, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Number{}, &ParseError{Input: s, Msg: "malformed integer literal"}
	}
	return FromBigInt(bi), nil
}

// Parse parses a numeric literal string into a Number, applying these rules:
//
//   - "p/q" divides parse(p) by parse(q); exactly one '/' is allowed and
//     either side may itself be a decimal or (recursively) a ratio.
//   - "A.B" evaluates to integer(A) + integer(B)/10^len(B); leading zeros
//     are stripped from A (and from B's integer value, but never from the
//     count of digits in B, since that count drives the denominator).
//   - otherwise the literal is a plain (optionally signed) integer.
//
// An empty or malformed literal returns a *ParseError.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, &ParseError{Input: s, Msg: "empty literal"}
	}

	if slashCount := strings.Count(s, "/"); slashCount > 0 {
		if slashCount != 1 {
			return Number{}, &ParseError{Input: s, Msg: "at most one '/' is allowed"}
		}
		parts := strings.SplitN(s, "/", 2)
		num, err := Parse(parts[0])
		if err != nil {
			return Number{}, err
		}
		den, err := Parse(parts[1])
		if err != nil {
			return Number{}, err
		}
		return num.Div(den)
	}

	if dotCount := strings.Count(s, "."); dotCount > 0 {
		if dotCount != 1 {
			return Number{}, &ParseError{Input: s, Msg: "malformed decimal literal"}
		}
		parts := strings.SplitN(s, ".", 2)
		intPart, fracPart := parts[0], parts[1]
		if fracPart == "" {
			return Number{}, &ParseError{Input: s, Msg: "empty fractional part"}
		}
		whole, err := parseIntegerLiteral(intPart)
		if err != nil {
			return Number{}, err
		}
		fracSign := ""
		fracDigits := fracPart
		if strings.HasPrefix(intPart, "-") {
			// the fractional magnitude is always added with the sign of the
			// whole part, e.g. "-1.5" = -(1 + 5/10)
			fracSign = "-"
		}
		fracNum, err := parseIntegerLiteral(fracDigits)
		if err != nil {
			return Number{}, err
		}
		if fracSign == "-" {
			fracNum = fracNum.Neg()
		}
		denom := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracDigits))), nil)
		frac, err := fracNum.Div(FromBigInt(denom))
		if err != nil {
			return Number{}, err
		}
		return whole.Add(frac), nil
	}

	return parseIntegerLiteral(s)
}

// Add returns a + b.
func (a Number) Add(b Number) Number {
	var out Number
	out.r.Add(&a.r, &b.r)
	return out
}

// Sub returns a - b.
func (a Number) Sub(b Number) Number {
	var out Number
	out.r.Sub(&a.r, &b.r)
	return out
}

// Mul returns a * b.
func (a Number) Mul(b Number) Number {
	var out Number
	out.r.Mul(&a.r, &b.r)
	return out
}

// Div returns a / b. It fails with an *ArithmeticError if b is zero.
func (a Number) Div(b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, &ArithmeticError{Op: "div", Msg: "division by zero"}
	}
	var out Number
	out.r.Quo(&a.r, &b.r)
	return out, nil
}

// Neg returns -a.
func (a Number) Neg() Number {
	var out Number
	out.r.Neg(&a.r)
	return out
}

// Abs returns |a|.
func (a Number) Abs() Number {
	var out Number
	out.r.Abs(&a.r)
	return out
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
func (a Number) Cmp(b Number) int {
	return a.r.Cmp(&b.r)
}

// Sign returns -1, 0, or +1 according to the sign of a.
func (a Number) Sign() int {
	return a.r.Sign()
}

// IsZero reports whether a is exactly zero.
func (a Number) IsZero() bool {
	return a.r.Sign() == 0
}

// Equal reports whether a and b denote the same rational value.
func (a Number) Equal(b Number) bool {
	return a.r.Cmp(&b.r) == 0
}

// Float64 returns a lossy float64 approximation of a, for display or
// heuristic purposes only; it must never be fed back into exact arithmetic.
func (a Number) Float64() float64 {
	f, _ := a.r.Float64()
	return f
}

// RatString returns the lossless canonical textual form of a, either an
// integer literal ("3", "-7") or a reduced ratio ("1/2", "-3/4").
func (a Number) RatString() string {
	return a.r.RatString()
}

// String implements fmt.Stringer using the same lossless form as RatString.
func (a Number) String() string {
	return a.RatString()
}
