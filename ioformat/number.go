package ioformat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cgshop2023/verifier/exactnum"
)

// ParseNumber decodes one CG:SHOP coordinate value, which may be encoded in
// JSON as a bare integer-valued number (1, -3, 2.0), a quoted string
// holding an integer, decimal, or ratio literal ("1/3", "2.5"), or an
// object {"num": ..., "den": ...} whose own num/den values recurse through
// these same three forms (den defaults to 1 when absent). A bare number
// with a fractional part (2.5) is rejected.
func ParseNumber(raw json.RawMessage) (exactnum.Number, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return exactnum.Number{}, fmt.Errorf("ioformat: empty number")
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return exactnum.Number{}, fmt.Errorf("ioformat: %w", err)
		}
		return exactnum.Parse(s)

	case '{':
		var obj struct {
			Num json.RawMessage `json:"num"`
			Den json.RawMessage `json:"den"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return exactnum.Number{}, fmt.Errorf("ioformat: %w", err)
		}
		if len(obj.Num) == 0 {
			return exactnum.Number{}, &MissingFieldError{Field: "num"}
		}
		num, err := ParseNumber(obj.Num)
		if err != nil {
			return exactnum.Number{}, err
		}
		if len(obj.Den) == 0 {
			return num, nil
		}
		den, err := ParseNumber(obj.Den)
		if err != nil {
			return exactnum.Number{}, err
		}
		return exactnum.FromRatio(num, den)

	default:
		// A bare JSON number: decode as json.Number to preserve its exact
		// literal text rather than round-tripping through float64.
		var n json.Number
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if err := dec.Decode(&n); err != nil {
			return exactnum.Number{}, fmt.Errorf("ioformat: %w", err)
		}
		v, err := exactnum.Parse(n.String())
		if err != nil {
			return exactnum.Number{}, err
		}
		if strings.Contains(v.RatString(), "/") {
			return exactnum.Number{}, fmt.Errorf("ioformat: bare number %s is not integer-valued", n)
		}
		return v, nil
	}
}
