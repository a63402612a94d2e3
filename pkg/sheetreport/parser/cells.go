package parser

import (
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/sheetreport/pkg/sheetreport/models"
	"github.com/xuri/excelize/v2"
)

// isoDateLayouts are accepted for cells stored with the ISO 8601 "d" type.
var isoDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"15:04:05",
}

// ExtractRows reads every row of a sheet as typed cells.
// Rows keep their position in the sheet: gaps come back as empty rows,
// trailing empty rows are dropped. Cell values are read raw, so formula
// cells yield their cached result.
func ExtractRows(f *excelize.File, sheetName string, date1904 bool) ([]models.Row, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("close rows of sheet %q: %v", sheetName, err)
		}
	}()

	typer := newCellTyper(f, sheetName, date1904)

	var result []models.Row
	last := 0
	rowNum := 0
	for rows.Next() {
		rowNum++ // 1-based row index
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, err
		}

		row := make(models.Row, len(cols))
		hasData := false
		for colIdx, raw := range cols {
			cell, err := typer.cell(colIdx+1, rowNum, raw)
			if err != nil {
				return nil, err
			}
			row[colIdx] = cell
			if !cell.IsEmpty() {
				hasData = true
			}
		}

		result = append(result, row)
		if hasData {
			last = len(result)
		}
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	return result[:last], nil
}

// cellTyper resolves the variant of raw cell values using the cell type
// and number format recorded in the worksheet. Its lookups load the
// worksheet model on first use, so memory grows with the sheet being read.
type cellTyper struct {
	f        *excelize.File
	sheet    string
	date1904 bool
	formats  map[int]DateFormat
}

func newCellTyper(f *excelize.File, sheet string, date1904 bool) *cellTyper {
	return &cellTyper{
		f:        f,
		sheet:    sheet,
		date1904: date1904,
		formats:  make(map[int]DateFormat),
	}
}

func (t *cellTyper) cell(col, row int, raw string) (models.Cell, error) {
	if raw == "" {
		return models.EmptyCell(), nil
	}

	cellName, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Cell{}, err
	}
	typ, err := t.f.GetCellType(t.sheet, cellName)
	if err != nil {
		return models.Cell{}, err
	}

	switch typ {
	case excelize.CellTypeBool:
		return models.BoolCell(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return models.StringCell(raw), nil
	case excelize.CellTypeDate:
		return parseISODate(raw), nil
	}

	value := parseValue(raw)
	if value.Kind != models.KindNumber {
		return value, nil
	}

	format, err := t.dateFormat(cellName)
	if err != nil {
		return models.Cell{}, err
	}
	if format == NotDate {
		return value, nil
	}
	tm, err := excelize.ExcelDateToTime(value.Num, t.date1904)
	if err != nil {
		// Serials outside the calendar range stay numeric.
		return value, nil
	}
	// Serials below one day carry no calendar date.
	if value.Num < 1 {
		return models.ClockCell(tm), nil
	}
	return models.TimeCell(tm), nil
}

// dateFormat classifies the number format applied to a cell, caching by style.
func (t *cellTyper) dateFormat(cellName string) (DateFormat, error) {
	styleID, err := t.f.GetCellStyle(t.sheet, cellName)
	if err != nil {
		return NotDate, err
	}
	if format, ok := t.formats[styleID]; ok {
		return format, nil
	}

	format := NotDate
	style, err := t.f.GetStyle(styleID)
	if err == nil && style != nil {
		if style.CustomNumFmt != nil {
			format = ClassifyNumFmtCode(*style.CustomNumFmt)
		} else {
			format = ClassifyBuiltinNumFmt(style.NumFmt)
		}
	}
	t.formats[styleID] = format
	return format, nil
}

// parseValue attempts to parse a raw value as a number.
// Returns a number cell, or a string cell holding the original text.
func parseValue(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return models.NumberCell(f)
	}
	return models.StringCell(s)
}

// parseISODate parses an ISO 8601 "d" cell, falling back to its text.
func parseISODate(s string) models.Cell {
	for _, layout := range isoDateLayouts {
		tm, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if layout == "15:04:05" {
			return models.ClockCell(tm)
		}
		return models.TimeCell(tm)
	}
	return models.StringCell(s)
}
