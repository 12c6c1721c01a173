package report

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/ledger"
)

// WriteSummary prints the KPI block shown after a run.
func WriteSummary(w io.Writer, k ledger.KPIs, anchor time.Time, opening decimal.Decimal) error {
	lines := []string{
		fmt.Sprintf("Opening balance on %s: %s", anchor.Format("2006-01-02"), opening.StringFixed(2)),
		fmt.Sprintf("Final balance:          %s", k.FinalBalance.StringFixed(2)),
		fmt.Sprintf("Minimum balance:        %s", k.MinimumCumulativeBalance.StringFixed(2)),
		fmt.Sprintf("Period net (realized):  %s", k.PeriodNetRealized.StringFixed(2)),
		fmt.Sprintf("Realized in/out:        %s / %s", k.TotalInflowRealized.StringFixed(2), k.TotalOutflowRealized.StringFixed(2)),
		fmt.Sprintf("Projected in/out:       %s / %s", k.TotalInflowProjected.StringFixed(2), k.TotalOutflowProjected.StringFixed(2)),
	}
	if k.MinimumCumulativeBalance.IsNegative() {
		lines = append(lines, fmt.Sprintf("Cash need:              %s", k.MinimumCumulativeBalance.Neg().StringFixed(2)))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
