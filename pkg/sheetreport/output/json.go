// Package output serializes sheet records to export files.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/ukaji3/sheetreport/pkg/sheetreport/models"
)

// ExportFileName returns the export file name for a sheet: spaces in the
// sheet name are replaced with underscores and suffix is appended.
func ExportFileName(sheetName, suffix string) string {
	return strings.ReplaceAll(sheetName, " ", "_") + suffix
}

// RecordsToJSON serializes records as a JSON array indented by two spaces.
// A nil or empty slice serializes as [].
func RecordsToJSON(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes data to path, creating or truncating it.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}
