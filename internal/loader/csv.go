package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// CSVParser parses the ';'-separated CSV exports. Field counts vary between
// export versions, so no fixed width is enforced.
type CSVParser struct{}

// Extensions returns the file extensions this parser handles.
func (p *CSVParser) Extensions() []string { return []string{".csv"} }

// Parse reads a CSV export into a RawTable.
func (p *CSVParser) Parse(r io.Reader, source string) (model.RawTable, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return model.RawTable{}, fmt.Errorf("reading %s: %w", source, err)
	}
	return buildTable(records, source)
}
