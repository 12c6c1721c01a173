package loader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// XLSXParser parses modern Excel workbooks. Only the first sheet is read;
// the exports never carry data elsewhere.
type XLSXParser struct{}

// Extensions returns the file extensions this parser handles.
func (p *XLSXParser) Extensions() []string { return []string{".xlsx"} }

// Parse reads the first sheet of an xlsx workbook into a RawTable.
func (p *XLSXParser) Parse(r io.Reader, source string) (model.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("opening %s: %w", source, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return model.RawTable{}, fmt.Errorf("reading sheet %q of %s: %w", sheet, source, err)
	}
	return buildTable(rows, source)
}
