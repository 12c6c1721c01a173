package classify

import (
	"github.com/fluxo-dev/fluxo/internal/identity"
	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/schema"
)

// Deduplicate collapses the allocation lines of a paid table: the export
// repeats one economic payment once per cost allocation, which would
// double-count cash if summed directly. The first row per identity key wins.
// Returns the surviving rows, their keys (aligned), and the number of
// collapsed duplicates.
func Deduplicate(t model.RawTable) (rows []map[string]string, keys []string, dropped int) {
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		key := identity.PaidKey(
			t.Cell(row, schema.ColTitle),
			t.Cell(row, schema.ColInstallment),
			t.Cell(row, schema.ColPaymentDate),
			t.Cell(row, schema.ColNetPaid),
			t.Cell(row, schema.ColCreditor),
		)
		if seen[key] {
			dropped++
			continue
		}
		seen[key] = true
		rows = append(rows, row)
		keys = append(keys, key)
	}
	return rows, keys, dropped
}
