package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BarVariant tags which case of Bar is populated.
type BarVariant uint8

const (
	// BarFirst carries no data.
	BarFirst BarVariant = iota
	// BarSecond carries a number.
	BarSecond
	// BarThird carries a named field.
	BarThird
)

// Bar is an externally tagged union. On the wire it is one of
// "first", {"second": n} or {"third": {"thing": s}}.
type Bar struct {
	Variant BarVariant
	Number  uint32
	Thing   string
}

// First returns the unit case.
func First() Bar { return Bar{Variant: BarFirst} }

// Second returns the numeric case.
func Second(n uint32) Bar { return Bar{Variant: BarSecond, Number: n} }

// Third returns the struct case.
func Third(thing string) Bar { return Bar{Variant: BarThird, Thing: thing} }

type barThird struct {
	Thing *string `json:"thing"`
}

// MarshalJSON implements json.Marshaler.
func (b Bar) MarshalJSON() ([]byte, error) {
	switch b.Variant {
	case BarFirst:
		return []byte(`"first"`), nil
	case BarSecond:
		return json.Marshal(map[string]uint32{"second": b.Number})
	case BarThird:
		return json.Marshal(map[string]barThird{"third": {Thing: &b.Thing}})
	default:
		return nil, fmt.Errorf("unknown bar variant %d", b.Variant)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *Bar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return err
		}
		if tag != "first" {
			return fmt.Errorf("unknown variant %q, expected one of first, second, third", tag)
		}
		*b = First()
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("expected a bar variant: %w", err)
	}
	if len(fields) != 1 {
		return fmt.Errorf("expected a map with exactly one variant key, got %d", len(fields))
	}

	for tag, raw := range fields {
		switch tag {
		case "first":
			*b = First()
		case "second":
			var n uint32
			if err := json.Unmarshal(raw, &n); err != nil {
				return fmt.Errorf("invalid second: %w", err)
			}
			*b = Second(n)
		case "third":
			var third barThird
			if err := json.Unmarshal(raw, &third); err != nil {
				return fmt.Errorf("invalid third: %w", err)
			}
			if third.Thing == nil {
				return fmt.Errorf("missing field `thing`")
			}
			*b = Third(*third.Thing)
		default:
			return fmt.Errorf("unknown variant %q, expected one of first, second, third", tag)
		}
	}
	return nil
}

// Foo is the sample record served by /api/foo.
type Foo struct {
	Bars  []Bar `json:"bars"`
	Hello bool  `json:"hello"`
}

// UnmarshalJSON rejects payloads missing either field.
func (f *Foo) UnmarshalJSON(data []byte) error {
	var wire struct {
		Bars  *[]Bar `json:"bars"`
		Hello *bool  `json:"hello"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	switch {
	case wire.Bars == nil:
		return fmt.Errorf("missing field `bars`")
	case wire.Hello == nil:
		return fmt.Errorf("missing field `hello`")
	}
	f.Bars = *wire.Bars
	f.Hello = *wire.Hello
	return nil
}

// SampleFoo is the fixed value returned by GET /api/foo.
func SampleFoo() Foo {
	return Foo{
		Bars:  []Bar{First(), Second(42), Third("foo")},
		Hello: true,
	}
}
