package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/shakinm/xlsReader/xls"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// XLSParser parses legacy BIFF Excel workbooks, which some ERP installations
// still emit for the receivables export.
type XLSParser struct{}

// Extensions returns the file extensions this parser handles.
func (p *XLSParser) Extensions() []string { return []string{".xls"} }

// Parse reads the first sheet of a legacy xls workbook into a RawTable.
// The xls reader wants a file path, so the stream is spooled to a temp file.
func (p *XLSParser) Parse(r io.Reader, source string) (model.RawTable, error) {
	tmp, err := os.CreateTemp("", "fluxo-*.xls")
	if err != nil {
		return model.RawTable{}, fmt.Errorf("spooling %s: %w", source, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return model.RawTable{}, fmt.Errorf("spooling %s: %w", source, err)
	}
	if err := tmp.Close(); err != nil {
		return model.RawTable{}, fmt.Errorf("spooling %s: %w", source, err)
	}

	wb, err := xls.OpenFile(tmp.Name())
	if err != nil {
		return model.RawTable{}, fmt.Errorf("opening %s: %w", source, err)
	}
	sheet, err := wb.GetSheet(0)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("reading first sheet of %s: %w", source, err)
	}

	var rows [][]string
	for _, xlsRow := range sheet.GetRows() {
		var cells []string
		for _, col := range xlsRow.GetCols() {
			cells = append(cells, col.GetString())
		}
		rows = append(rows, cells)
	}
	return buildTable(rows, source)
}
