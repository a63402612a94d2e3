package sheetreport

import (
	"path/filepath"
	"testing"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	if opts.InputPath != DefaultInputPath {
		t.Errorf("InputPath = %q", opts.InputPath)
	}
	if opts.OutputDir != "." {
		t.Errorf("OutputDir = %q", opts.OutputDir)
	}
	if opts.FileSuffix != DefaultFileSuffix {
		t.Errorf("FileSuffix = %q", opts.FileSuffix)
	}
}

func TestOptionsSampleSize(t *testing.T) {
	tests := []struct {
		rows     int
		expected int
	}{
		{0, DefaultSampleRows},
		{-1, 0},
		{3, 3},
	}

	for _, tt := range tests {
		if got := (Options{SampleRows: tt.rows}).SampleSize(); got != tt.expected {
			t.Errorf("SampleSize(%d) = %d, expected %d", tt.rows, got, tt.expected)
		}
	}
}

func TestOptionsExportPath(t *testing.T) {
	opts := Options{OutputDir: "out", FileSuffix: DefaultFileSuffix}
	if got := opts.ExportPath("My Sheet"); got != filepath.Join("out", "My_Sheet_data.json") {
		t.Errorf("ExportPath() = %q", got)
	}
	if got := DefaultOptions().ExportPath("Offers"); got != "Offers_data.json" {
		t.Errorf("ExportPath() = %q", got)
	}
	if got := (Options{OutputDir: "out", FileSuffix: ".json"}).ExportPath("Q1 Sales"); got != filepath.Join("out", "Q1_Sales.json") {
		t.Errorf("ExportPath() = %q", got)
	}
}
