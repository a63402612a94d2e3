package models

import (
	"bytes"
	"strconv"
	"strings"
)

// NullKey is the record key used for header cells without a value.
const NullKey = "null"

// Field is a single key/value pair of a Record.
type Field struct {
	Key   string
	Value Cell
}

// Record maps column names to cell values, preserving header order.
type Record struct {
	fields []Field
	index  map[string]int
}

// HeaderKey returns the record key for a header cell.
func HeaderKey(c Cell) string {
	if c.IsEmpty() {
		return NullKey
	}
	return c.String()
}

// NewRecord pairs header and row positionally.
//
// Positions missing from row become empty values and cells beyond the
// header width are dropped. A repeated key keeps its first position and
// takes the value of its last occurrence.
func NewRecord(header, row Row) Record {
	r := Record{index: make(map[string]int, len(header))}
	for i, h := range header {
		key := HeaderKey(h)
		var v Cell
		if i < len(row) {
			v = row[i]
		}
		if pos, ok := r.index[key]; ok {
			r.fields[pos].Value = v
			continue
		}
		r.index[key] = len(r.fields)
		r.fields = append(r.fields, Field{Key: key, Value: v})
	}
	return r
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns the fields in header order.
func (r Record) Fields() []Field { return r.fields }

// Keys returns the keys in header order.
func (r Record) Keys() []string {
	keys := make([]string, len(r.fields))
	for i, f := range r.fields {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key.
func (r Record) Get(key string) (Cell, bool) {
	pos, ok := r.index[key]
	if !ok {
		return Cell{}, false
	}
	return r.fields[pos].Value, true
}

// MarshalJSON implements json.Marshaler. Keys are written in header order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encodeJSON(f.Key)
		if err != nil {
			return nil, err
		}
		val, err := encodeJSON(f.Value.Value())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the record on one line, e.g. {"ID": 1, "Price": 9.5}.
func (r Record) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(f.Key))
		b.WriteString(": ")
		val, err := encodeJSON(f.Value.Value())
		if err != nil {
			b.WriteString(strconv.Quote(f.Value.String()))
			continue
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.String()
}
