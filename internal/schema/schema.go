// Package schema decides which recognized export a raw table represents by
// probing its column headers. Matching is table-driven: each kind declares the
// header substrings it requires and the ones that rule it out, so the
// disambiguation rules stay auditable in one place.
package schema

import (
	"fmt"
	"strings"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// Canonical header markers found in the ERP exports. Matched by substring
// because real headers carry extra decoration.
const (
	ColPaymentDate   = "Data pagamento"
	ColNetPaid       = "Valor líquido"
	ColDueDate       = "Data vencimento"
	ColPayableAmount = "Valor a pagar"
	ColParcelStatus  = "Situação da parcela"
	ColSettleDate    = "Data da baixa"
	ColSettledAmount = "Valor da baixa"
	ColDueAmount     = "Valor devido"
	ColTitle         = "Título"
	ColInstallment   = "Parcela"
	ColCreditor      = "Credor"
)

// Definition is the column contract for one SourceKind. A table matches when
// every Required marker appears in some header and no Forbidden marker does.
type Definition struct {
	Kind      model.SourceKind
	Required  []string
	Forbidden []string
}

// definitions is evaluated in order; the first match wins. Paid must be
// checked before Payable because both carry amount columns, and the absence
// of a payment date is what makes a table Payable.
var definitions = []Definition{
	{
		Kind:      model.KindPaid,
		Required:  []string{ColPaymentDate},
		Forbidden: []string{ColParcelStatus},
	},
	{
		Kind:      model.KindPayable,
		Required:  []string{ColDueDate, ColPayableAmount},
		Forbidden: []string{ColPaymentDate, ColParcelStatus},
	},
	{
		Kind:     model.KindReceivable,
		Required: []string{ColParcelStatus, ColSettledAmount, ColDueAmount},
	},
}

// Definitions returns the resolution table in evaluation order.
func Definitions() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)
	return out
}

// Lookup returns the definition for a kind.
func Lookup(kind model.SourceKind) (Definition, bool) {
	for _, d := range definitions {
		if d.Kind == kind {
			return d, true
		}
	}
	return Definition{}, false
}

// Resolve inspects a table's headers and returns its SourceKind. Unrecognized
// tables get warnings naming, per candidate kind, which required markers were
// missing; resolution itself never fails.
func Resolve(t model.RawTable) (model.SourceKind, []string) {
	for _, d := range definitions {
		if matches(t, d) {
			return d.Kind, nil
		}
	}

	var warnings []string
	for _, d := range definitions {
		if missing := missingColumns(t, d); len(missing) > 0 {
			warnings = append(warnings, fmt.Sprintf(
				"not %s: missing column(s) %s", d.Kind, strings.Join(missing, ", ")))
		} else {
			warnings = append(warnings, fmt.Sprintf(
				"not %s: a forbidden column is present", d.Kind))
		}
	}
	return model.KindUnrecognized, warnings
}

func matches(t model.RawTable, d Definition) bool {
	for _, marker := range d.Required {
		if t.Column(marker) == "" {
			return false
		}
	}
	for _, marker := range d.Forbidden {
		if t.Column(marker) != "" {
			return false
		}
	}
	return true
}

func missingColumns(t model.RawTable, d Definition) []string {
	var missing []string
	for _, marker := range d.Required {
		if t.Column(marker) == "" {
			missing = append(missing, fmt.Sprintf("%q", marker))
		}
	}
	return missing
}
