package classify

import (
	"fmt"

	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/normalize"
	"github.com/fluxo-dev/fluxo/internal/schema"
)

// PaidRule maps paid-export rows to realized outflows. Allocation duplicates
// are collapsed before classification.
type PaidRule struct{}

// Kind returns the table kind this rule handles.
func (r *PaidRule) Kind() model.SourceKind { return model.KindPaid }

// Classify emits one realized outflow per deduplicated row with a parseable
// payment date and a nonzero net amount.
func (r *PaidRule) Classify(t model.RawTable, opts Options) ([]model.Transaction, []string) {
	rows, keys, dupes := Deduplicate(t)
	locale := opts.localeFor(model.KindPaid)

	var txns []model.Transaction
	var badDate, noAmount int
	for i, row := range rows {
		date, ok := normalize.ParseDate(t.Cell(row, schema.ColPaymentDate))
		if !ok {
			badDate++
			continue
		}
		amount, err := normalize.ParseAmount(t.Cell(row, schema.ColNetPaid), locale)
		if err != nil || amount.IsZero() {
			noAmount++
			continue
		}
		txns = append(txns, model.Transaction{
			Date:        date,
			Amount:      amount.Abs().Neg(), // outflow, sign derived
			Status:      model.StatusRealized,
			Source:      t.Source,
			IdentityKey: keys[i],
		})
	}

	var warnings []string
	if dupes > 0 {
		warnings = append(warnings, fmt.Sprintf("%d duplicate allocation row(s) collapsed", dupes))
	}
	warnings = append(warnings, dropWarnings(badDate, "payment date", noAmount, "net amount")...)
	return txns, warnings
}

// dropWarnings phrases the skipped-row counters shared by all rules.
func dropWarnings(badDate int, dateField string, noAmount int, amountField string) []string {
	var warnings []string
	if badDate > 0 {
		warnings = append(warnings, fmt.Sprintf("%d row(s) dropped: unparseable %s", badDate, dateField))
	}
	if noAmount > 0 {
		warnings = append(warnings, fmt.Sprintf("%d row(s) dropped: zero or unparseable %s", noAmount, amountField))
	}
	return warnings
}
