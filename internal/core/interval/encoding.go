package interval

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"gopkg.in/yaml.v3"
)

// The Unmarshal and Scan methods below decode into a zero Value only; they
// exist so a Value can sit directly in JSON, YAML and SQL structs.

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes v as its canonical string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON accepts a JSON string in interval syntax.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &TypeError{Op: "UnmarshalJSON", Got: fmt.Sprintf("non-string JSON %s", data)}
	}
	return v.UnmarshalText([]byte(s))
}

// MarshalYAML encodes v as its canonical string.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

// UnmarshalYAML accepts a scalar in interval syntax.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &TypeError{Op: "UnmarshalYAML", Got: fmt.Sprintf("yaml node kind %d at line %d", node.Kind, node.Line)}
	}
	return v.UnmarshalText([]byte(node.Value))
}

// Value implements driver.Valuer. The canonical form is valid input for a
// PostgreSQL interval column.
func (v Value) Value() (driver.Value, error) {
	return v.String(), nil
}

// Scan implements sql.Scanner for text and bytea-like sources, which is how
// lib/pq hands over interval columns. NULL is rejected; scan into a
// pointer column type when NULLs are expected.
func (v *Value) Scan(src interface{}) error {
	switch s := src.(type) {
	case string:
		return v.UnmarshalText([]byte(s))
	case []byte:
		return v.UnmarshalText(s)
	case nil:
		return &TypeError{Op: "Scan", Got: "NULL"}
	default:
		return &TypeError{Op: "Scan", Got: fmt.Sprintf("%T", src)}
	}
}

// Field numbers of the binary form, a protobuf message equivalent to
//
//	message Interval { sint64 months = 1; sint64 days = 2; sint64 seconds = 3; }
const (
	wireMonths  protowire.Number = 1
	wireDays    protowire.Number = 2
	wireSeconds protowire.Number = 3
)

// MarshalBinary encodes v in protobuf wire format. Zero fields are omitted.
func (v Value) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendSint64(b, wireMonths, v.months)
	b = appendSint64(b, wireDays, v.days)
	b = appendSint64(b, wireSeconds, v.seconds)
	return b, nil
}

func appendSint64(b []byte, num protowire.Number, n int64) []byte {
	if n == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, protowire.EncodeZigZag(n))
}

// UnmarshalBinary decodes the protobuf wire form. Unknown fields are
// skipped.
func (v *Value) UnmarshalBinary(data []byte) error {
	var out Value
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("decoding interval tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if typ != protowire.VarintType || num < wireMonths || num > wireSeconds {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("skipping interval field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		raw, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return fmt.Errorf("decoding interval field %d: %w", num, protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case wireMonths:
			out.months = protowire.DecodeZigZag(raw)
		case wireDays:
			out.days = protowire.DecodeZigZag(raw)
		case wireSeconds:
			out.seconds = protowire.DecodeZigZag(raw)
		}
	}
	*v = out
	return nil
}
