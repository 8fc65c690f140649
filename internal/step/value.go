package step

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Value is a numeric cell, distance or key carried by a step payload.
// Infinity is an explicit sentinel, so it survives deep copies and
// serialization unchanged.
type Value int64

// Infinity marks an unreachable node or an unset distance.
const Infinity Value = math.MaxInt64

// infText is the serialized form of Infinity.
const infText = "inf"

// IsInf reports whether v is the Infinity sentinel.
func (v Value) IsInf() bool {
	return v == Infinity
}

// Add returns v+w, saturating at Infinity when either operand is infinite.
func (v Value) Add(w Value) Value {
	if v.IsInf() || w.IsInf() {
		return Infinity
	}
	return v + w
}

// Less reports whether v is strictly smaller than w. Infinity is larger than
// every finite value.
func (v Value) Less(w Value) bool {
	if v.IsInf() {
		return false
	}
	if w.IsInf() {
		return true
	}
	return v < w
}

// String returns the display form; Infinity renders as "∞".
func (v Value) String() string {
	if v.IsInf() {
		return "∞"
	}
	return strconv.FormatInt(int64(v), 10)
}

// MarshalJSON encodes Infinity as the string "inf" and finite values as numbers.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsInf() {
		return json.Marshal(infText)
	}
	return []byte(strconv.FormatInt(int64(v), 10)), nil
}

// UnmarshalJSON accepts either a number or the string "inf".
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != infText {
			return fmt.Errorf("invalid value %q", s)
		}
		*v = Infinity
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	*v = Value(n)
	return nil
}

// MarshalYAML encodes Infinity as "inf" and finite values as integers.
func (v Value) MarshalYAML() (any, error) {
	if v.IsInf() {
		return infText, nil
	}
	return int64(v), nil
}

// UnmarshalYAML accepts either an integer or "inf".
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == infText {
		*v = Infinity
		return nil
	}
	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid value %q: %w", node.Value, err)
	}
	*v = Value(n)
	return nil
}
