package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func header(names ...string) Row {
	row := make(Row, len(names))
	for i, n := range names {
		if n == "" {
			row[i] = EmptyCell()
			continue
		}
		row[i] = StringCell(n)
	}
	return row
}

func TestNewRecord(t *testing.T) {
	tests := []struct {
		name     string
		header   Row
		row      Row
		expected string
	}{
		{
			name:     "Aligned",
			header:   header("ID", "Price"),
			row:      Row{NumberCell(1), NumberCell(9.5)},
			expected: `{"ID": 1, "Price": 9.5}`,
		},
		{
			name:     "Short row padded with null",
			header:   header("ID", "Price"),
			row:      Row{NumberCell(2)},
			expected: `{"ID": 2, "Price": null}`,
		},
		{
			name:     "Extra cells dropped",
			header:   header("ID"),
			row:      Row{NumberCell(3), StringCell("extra")},
			expected: `{"ID": 3}`,
		},
		{
			name:     "Null header kept",
			header:   header("ID", "", "Name"),
			row:      Row{NumberCell(4), StringCell("x"), StringCell("Bob")},
			expected: `{"ID": 4, "null": "x", "Name": "Bob"}`,
		},
		{
			name:     "Duplicate header last value wins",
			header:   header("A", "B", "A"),
			row:      Row{NumberCell(1), NumberCell(2), NumberCell(3)},
			expected: `{"A": 3, "B": 2}`,
		},
		{
			name:     "Numeric header",
			header:   Row{NumberCell(2023), NumberCell(2024)},
			row:      Row{BoolCell(true), EmptyCell()},
			expected: `{"2023": true, "2024": null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewRecord(tt.header, tt.row).String()
			if got != tt.expected {
				t.Errorf("NewRecord() = %s; want %s", got, tt.expected)
			}
		})
	}
}

func TestRecordKeysFollowHeaderOrder(t *testing.T) {
	rec := NewRecord(header("Zeta", "Alpha", "Mid"), Row{NumberCell(1), NumberCell(2), NumberCell(3)})

	expected := []string{"Zeta", "Alpha", "Mid"}
	if !reflect.DeepEqual(rec.Keys(), expected) {
		t.Errorf("Keys() = %v; want %v", rec.Keys(), expected)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"Zeta":1,"Alpha":2,"Mid":3}` {
		t.Errorf("Unexpected JSON: %s", data)
	}
}

func TestRecordGet(t *testing.T) {
	rec := NewRecord(header("ID", "Price"), Row{NumberCell(7)})

	if v, ok := rec.Get("ID"); !ok || v.Num != 7 {
		t.Errorf("Get(ID) = %v, %v", v, ok)
	}
	if v, ok := rec.Get("Price"); !ok || !v.IsEmpty() {
		t.Errorf("Get(Price) = %v, %v; want empty cell", v, ok)
	}
	if _, ok := rec.Get("Missing"); ok {
		t.Error("Expected Get(Missing) to report false")
	}

	var zero Record
	if _, ok := zero.Get("ID"); ok {
		t.Error("Expected zero record to have no keys")
	}
	if data, _ := json.Marshal(zero); string(data) != "{}" {
		t.Errorf("Expected {} for zero record, got %s", data)
	}
}
