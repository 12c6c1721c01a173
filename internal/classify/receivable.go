package classify

import (
	"strings"

	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/normalize"
	"github.com/fluxo-dev/fluxo/internal/schema"
)

// ReceivableRule maps receivable-export rows to inflows: settled parcels
// become realized inflows on their settlement date, parcels still marked as
// pending become projected inflows on their due date.
type ReceivableRule struct{}

// Kind returns the table kind this rule handles.
func (r *ReceivableRule) Kind() model.SourceKind { return model.KindReceivable }

// Classify emits at most one transaction per row. A nonzero settled amount
// takes precedence; only rows without one are considered for projection.
func (r *ReceivableRule) Classify(t model.RawTable, opts Options) ([]model.Transaction, []string) {
	locale := opts.localeFor(model.KindReceivable)
	marker := opts.marker()

	var txns []model.Transaction
	var badSettleDate, badDueDate, noAmount int
	for _, row := range t.Rows {
		settled, err := normalize.ParseAmount(t.Cell(row, schema.ColSettledAmount), locale)
		if err == nil && !settled.IsZero() {
			date, ok := normalize.ParseDate(t.Cell(row, schema.ColSettleDate))
			if !ok {
				badSettleDate++
				continue
			}
			txns = append(txns, model.Transaction{
				Date:   date,
				Amount: settled.Abs(),
				Status: model.StatusRealized,
				Source: t.Source,
			})
			continue
		}

		status := strings.TrimSpace(t.Cell(row, schema.ColParcelStatus))
		if status != marker {
			continue // settled for zero or in some other state; no cash movement
		}
		due, err := normalize.ParseAmount(t.Cell(row, schema.ColDueAmount), locale)
		if err != nil || due.IsZero() {
			noAmount++
			continue
		}
		date, ok := normalize.ParseDate(t.Cell(row, schema.ColDueDate))
		if !ok {
			badDueDate++
			continue
		}
		txns = append(txns, model.Transaction{
			Date:   date,
			Amount: due.Abs(),
			Status: model.StatusProjected,
			Source: t.Source,
		})
	}

	warnings := dropWarnings(badSettleDate, "settlement date", noAmount, "due amount")
	warnings = append(warnings, dropWarnings(badDueDate, "due date", 0, "")...)
	return txns, warnings
}
