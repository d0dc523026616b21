package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNotNumeric = errors.New("not a number")

// Int32 decodes from a JSON number or a string holding one. null leaves it zero.
type Int32 int32

func (n *Int32) UnmarshalJSON(b []byte) error {
	raw, ok, err := numericLiteral(b)
	if err != nil || !ok {
		return err
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return ErrNotNumeric
	}
	*n = Int32(v)
	return nil
}

// Float64 decodes from a JSON number or a string holding a finite one. null leaves it zero.
type Float64 float64

func (f *Float64) UnmarshalJSON(b []byte) error {
	raw, ok, err := numericLiteral(b)
	if err != nil || !ok {
		return err
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNotNumeric
	}
	*f = Float64(v)
	return nil
}

// numericLiteral unquotes b when it is a string. ok is false for null.
func numericLiteral(b []byte) (string, bool, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", false, nil
	}
	if len(b) == 0 || b[0] != '"' {
		return string(b), true, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", false, ErrNotNumeric
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false, ErrNotNumeric
	}
	return s, true, nil
}
