package classify

import (
	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/normalize"
	"github.com/fluxo-dev/fluxo/internal/schema"
)

// PayableRule maps payable-export rows to projected outflows on their due
// date.
type PayableRule struct{}

// Kind returns the table kind this rule handles.
func (r *PayableRule) Kind() model.SourceKind { return model.KindPayable }

// Classify emits one projected outflow per row with a parseable due date and
// a nonzero payable amount.
func (r *PayableRule) Classify(t model.RawTable, opts Options) ([]model.Transaction, []string) {
	locale := opts.localeFor(model.KindPayable)

	var txns []model.Transaction
	var badDate, noAmount int
	for _, row := range t.Rows {
		date, ok := normalize.ParseDate(t.Cell(row, schema.ColDueDate))
		if !ok {
			badDate++
			continue
		}
		amount, err := normalize.ParseAmount(t.Cell(row, schema.ColPayableAmount), locale)
		if err != nil || amount.IsZero() {
			noAmount++
			continue
		}
		txns = append(txns, model.Transaction{
			Date:   date,
			Amount: amount.Abs().Neg(),
			Status: model.StatusProjected,
			Source: t.Source,
		})
	}
	return txns, dropWarnings(badDate, "due date", noAmount, "payable amount")
}
