package models

// Row is an ordered sequence of cells, positionally aligned with the header.
type Row []Cell

// SheetData holds the rows of a single sheet.
type SheetData struct {
	// Name is the sheet name.
	Name string
	// Rows contains every row, header first. Trailing empty rows are not included.
	Rows []Row
}

// IsEmpty reports whether the sheet has no rows at all.
func (s *SheetData) IsEmpty() bool { return len(s.Rows) == 0 }

// TotalRows returns the row count including the header row.
func (s *SheetData) TotalRows() int { return len(s.Rows) }

// Header returns the first row, or nil for an empty sheet.
func (s *SheetData) Header() Row {
	if s.IsEmpty() {
		return nil
	}
	return s.Rows[0]
}

// Columns returns the header names, skipping header cells without a value.
func (s *SheetData) Columns() []string {
	var cols []string
	for _, c := range s.Header() {
		if c.IsEmpty() {
			continue
		}
		cols = append(cols, c.String())
	}
	return cols
}

// DataRows returns every row after the header.
func (s *SheetData) DataRows() []Row {
	if len(s.Rows) < 2 {
		return nil
	}
	return s.Rows[1:]
}

// Records pairs every data row with the header. The result is never nil.
// The header is widened to the widest row, so cells in columns without a
// header name are kept under NullKey.
func (s *SheetData) Records() []Record {
	header := s.Header()
	if width := s.width(); width > len(header) {
		padded := make(Row, width)
		copy(padded, header)
		header = padded
	}
	data := s.DataRows()
	records := make([]Record, 0, len(data))
	for _, row := range data {
		records = append(records, NewRecord(header, row))
	}
	return records
}

// width returns the cell count of the widest row.
func (s *SheetData) width() int {
	n := 0
	for _, row := range s.Rows {
		n = max(n, len(row))
	}
	return n
}
