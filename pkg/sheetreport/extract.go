package sheetreport

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/sheetreport/pkg/sheetreport/models"
	"github.com/ukaji3/sheetreport/pkg/sheetreport/parser"
	"github.com/xuri/excelize/v2"
)

// Workbook is an open, read-only workbook.
type Workbook struct {
	file     *excelize.File
	path     string
	date1904 bool
}

// Open opens the workbook at path.
func Open(path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, inputError(path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, inputError(path, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}

	props, err := f.GetWorkbookProps()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}

	return &Workbook{
		file:     f,
		path:     path,
		date1904: props.Date1904 != nil && *props.Date1904,
	}, nil
}

func inputError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
}

// Name returns the workbook file name (no path).
func (wb *Workbook) Name() string { return filepath.Base(wb.path) }

// SheetNames returns the sheet names in workbook order.
func (wb *Workbook) SheetNames() []string { return wb.file.GetSheetList() }

// ReadSheet materializes every row of the named sheet.
func (wb *Workbook) ReadSheet(name string) (*models.SheetData, error) {
	rows, err := parser.ExtractRows(wb.file, name, wb.date1904)
	if err != nil {
		return nil, NewSheetError(name, StageRows, fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	return &models.SheetData{Name: name, Rows: rows}, nil
}

// Close releases the workbook.
func (wb *Workbook) Close() error { return wb.file.Close() }
