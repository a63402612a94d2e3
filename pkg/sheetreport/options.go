// Package sheetreport prints a summary of every sheet in a workbook and
// exports each sheet's data rows as JSON records.
package sheetreport

import (
	"path/filepath"

	"github.com/ukaji3/sheetreport/pkg/sheetreport/output"
)

const (
	// DefaultInputPath is the workbook read when no path is given.
	DefaultInputPath = "controll offers.xlsx"
	// DefaultSampleRows is the number of data rows shown per sheet.
	DefaultSampleRows = 10
	// DefaultFileSuffix is appended to the sheet name to form the export file name.
	DefaultFileSuffix = "_data.json"
)

// Options configures a report run.
type Options struct {
	// InputPath is the workbook to read. Defaults to DefaultInputPath.
	InputPath string
	// OutputDir receives the export files. Defaults to the working directory.
	OutputDir string
	// SampleRows is the number of data rows printed per sheet.
	// Zero means DefaultSampleRows; a negative value prints none.
	SampleRows int
	// FileSuffix is appended to the export file names. Defaults to DefaultFileSuffix.
	FileSuffix string
}

// DefaultOptions returns default report options.
func DefaultOptions() Options {
	return Options{
		InputPath:  DefaultInputPath,
		OutputDir:  ".",
		SampleRows: DefaultSampleRows,
		FileSuffix: DefaultFileSuffix,
	}
}

// withDefaults fills unset fields from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.InputPath == "" {
		o.InputPath = def.InputPath
	}
	if o.OutputDir == "" {
		o.OutputDir = def.OutputDir
	}
	if o.FileSuffix == "" {
		o.FileSuffix = def.FileSuffix
	}
	return o
}

// SampleSize returns the number of data rows to print per sheet.
func (o Options) SampleSize() int {
	switch {
	case o.SampleRows < 0:
		return 0
	case o.SampleRows == 0:
		return DefaultSampleRows
	}
	return o.SampleRows
}

// ExportPath returns the export file path for a sheet. Run fills unset
// fields before calling it.
func (o Options) ExportPath(sheetName string) string {
	return filepath.Join(o.OutputDir, output.ExportFileName(sheetName, o.FileSuffix))
}
