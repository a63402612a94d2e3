// Package models defines data structures for workbook reporting.
package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"
)

// Kind identifies which variant a Cell holds.
type Kind uint8

const (
	// KindEmpty is an absent value (no cell, or a cell without a value).
	KindEmpty Kind = iota
	// KindString is a text value.
	KindString
	// KindNumber is a numeric value.
	KindNumber
	// KindBool is a boolean value.
	KindBool
	// KindTime is a date, date-time or time-of-day value.
	KindTime
)

// Layouts used for the canonical string form of time cells.
const (
	DateTimeLayout = "2006-01-02 15:04:05"
	ClockLayout    = "15:04:05"
)

// Cell is a single worksheet value.
type Cell struct {
	// Kind selects the populated field.
	Kind Kind
	// Str holds the KindString value.
	Str string
	// Num holds the KindNumber value.
	Num float64
	// Bool holds the KindBool value.
	Bool bool
	// Time holds the KindTime value.
	Time time.Time
	// ClockOnly marks a KindTime value formatted as a time of day.
	ClockOnly bool
}

// EmptyCell returns an absent value.
func EmptyCell() Cell { return Cell{} }

// StringCell returns a text value.
func StringCell(s string) Cell { return Cell{Kind: KindString, Str: s} }

// NumberCell returns a numeric value.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Num: f} }

// BoolCell returns a boolean value.
func BoolCell(b bool) Cell { return Cell{Kind: KindBool, Bool: b} }

// TimeCell returns a date-time value.
func TimeCell(t time.Time) Cell { return Cell{Kind: KindTime, Time: t} }

// ClockCell returns a time-of-day value.
func ClockCell(t time.Time) Cell { return Cell{Kind: KindTime, Time: t, ClockOnly: true} }

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// String returns the canonical string form of the value.
// Empty cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case KindString:
		return c.Str
	case KindNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(c.Bool)
	case KindTime:
		return formatTime(c.Time, c.ClockOnly)
	default:
		return ""
	}
}

// Value returns the value as a JSON primitive: nil, string, float64 or bool.
// Times and non-finite numbers are returned in their string form.
func (c Cell) Value() any {
	switch c.Kind {
	case KindString:
		return c.Str
	case KindNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return c.String()
		}
		return c.Num
	case KindBool:
		return c.Bool
	case KindTime:
		return c.String()
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (c Cell) MarshalJSON() ([]byte, error) {
	return encodeJSON(c.Value())
}

func formatTime(t time.Time, clockOnly bool) string {
	layout := DateTimeLayout
	if clockOnly {
		layout = ClockLayout
	}
	t = t.Round(time.Microsecond)
	if t.Nanosecond() != 0 {
		layout += ".000000"
	}
	return t.Format(layout)
}

// encodeJSON marshals v without HTML escaping and without the trailing newline.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
