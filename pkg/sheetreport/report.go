package sheetreport

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ukaji3/sheetreport/pkg/sheetreport/models"
	"github.com/ukaji3/sheetreport/pkg/sheetreport/output"
	"github.com/ukaji3/sheetreport/pkg/sheetreport/parser"
)

const ruleWidth = 80

// SheetResult describes one processed sheet.
type SheetResult struct {
	Name string
	// TotalRows includes the header row.
	TotalRows int
	Records   int
	// ExportFile is empty for sheets without rows.
	ExportFile string
}

// Result describes a report run.
type Result struct {
	InputFile string
	Sheets    []SheetResult
}

// ExportFiles returns the export files written, in sheet order.
func (r *Result) ExportFiles() []string {
	var files []string
	for _, s := range r.Sheets {
		if s.ExportFile != "" {
			files = append(files, s.ExportFile)
		}
	}
	return files
}

// Run reads the workbook named by opts, prints a summary of every sheet to w
// and writes one export file per non-empty sheet.
//
// The first error aborts the run. Export files already written are kept and
// listed in the returned Result.
func Run(w io.Writer, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	st := NewStyles(w)
	result := &Result{InputFile: opts.InputPath}

	fmt.Fprintf(w, "📂 Reading file: %s\n\n", opts.InputPath)

	wb, err := Open(opts.InputPath)
	if err != nil {
		return result, err
	}
	defer func() {
		if err := wb.Close(); err != nil {
			log.Printf("close workbook %s: %v", wb.Name(), err)
		}
	}()

	names := wb.SheetNames()
	fmt.Fprintf(w, "📄 Sheets found: %s\n\n", strings.Join(names, ", "))

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return result, fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}

	for _, name := range names {
		sr, err := reportSheet(w, st, wb, name, opts)
		if sr != nil {
			result.Sheets = append(result.Sheets, *sr)
		}
		if err != nil {
			return result, err
		}
	}

	fmt.Fprintf(w, "\n%s\n", st.Success.Render("✅ Done!"))
	return result, nil
}

// reportSheet prints the summary of one sheet and writes its export file.
func reportSheet(w io.Writer, st Styles, wb *Workbook, name string, opts Options) (*SheetResult, error) {
	fmt.Fprintf(w, "\n%s\n", st.Title.Render("📋 Sheet: "+name))
	fmt.Fprintln(w, st.Rule.Render(strings.Repeat("─", ruleWidth)))

	sheet, err := wb.ReadSheet(name)
	if err != nil {
		return nil, err
	}

	sr := &SheetResult{Name: name, TotalRows: sheet.TotalRows()}
	if sheet.IsEmpty() {
		fmt.Fprintln(w, st.Muted.Render("  Empty sheet"))
		return sr, nil
	}

	fmt.Fprintf(w, "  Columns: %s\n", strings.Join(sheet.Columns(), ", "))
	fmt.Fprintf(w, "  Total rows (including header): %d\n", sheet.TotalRows())
	if dataRange := parser.DataRange(sheet.Rows); dataRange != "" {
		fmt.Fprintf(w, "  Data range: %s\n", dataRange)
	}

	records := sheet.Records()
	sr.Records = len(records)
	printSample(w, records, opts.SampleSize())

	path, err := exportRecords(name, records, opts)
	if err != nil {
		return sr, err
	}
	sr.ExportFile = path

	fmt.Fprintf(w, "\n  %s\n", st.Success.Render("✅ Data exported to: "+path))
	return sr, nil
}

func printSample(w io.Writer, records []models.Record, n int) {
	if n == 0 {
		return
	}
	fmt.Fprintf(w, "\n  First %d rows:\n", n)
	for i, rec := range records[:min(n, len(records))] {
		fmt.Fprintf(w, "\n  %d. %s\n", i+1, rec)
	}
}

// exportRecords writes records to the sheet's export file and returns its path.
func exportRecords(sheetName string, records []models.Record, opts Options) (string, error) {
	data, err := output.RecordsToJSON(records)
	if err != nil {
		return "", NewSheetError(sheetName, StageSerialize, fmt.Errorf("%w: %w", ErrSerialization, err))
	}

	path := opts.ExportPath(sheetName)
	if err := output.WriteFile(path, data); err != nil {
		return "", NewSheetError(sheetName, StageWrite, fmt.Errorf("%w: %w", ErrWriteFailed, err))
	}
	return path, nil
}
