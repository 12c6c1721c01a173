package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/normalize"
)

// VerifyError describes a single ledger invariant violation.
type VerifyError struct {
	Date        time.Time
	Description string
}

func (e VerifyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Date.Format("2006-01-02"), e.Description)
}

// Verify re-checks the structural invariants of an anchored bucket sequence:
// contiguous dates, span covering the anchor, nets consistent with flows, and
// the anchoring identity holding at the anchor and between every pair of
// neighbors. Used by tests and the CLI's --verify flag.
func Verify(buckets []model.DailyBucket, anchor time.Time, opening decimal.Decimal) []VerifyError {
	var errs []VerifyError
	if len(buckets) == 0 {
		return nil
	}

	day := normalize.Day(anchor)
	if day.Before(buckets[0].Date) || day.After(buckets[len(buckets)-1].Date) {
		errs = append(errs, VerifyError{day, "anchor date outside bucket span"})
	}

	for i, b := range buckets {
		if i > 0 {
			want := buckets[i-1].Date.AddDate(0, 0, 1)
			if !b.Date.Equal(want) {
				errs = append(errs, VerifyError{b.Date, fmt.Sprintf(
					"gap in date sequence: expected %s", want.Format("2006-01-02"))})
			}
			wantBal := buckets[i-1].CumulativeBalance.Add(b.NetRealized)
			if !b.CumulativeBalance.Equal(wantBal) {
				errs = append(errs, VerifyError{b.Date, fmt.Sprintf(
					"balance %s does not extend neighbor by net realized (want %s)",
					b.CumulativeBalance, wantBal)})
			}
		}
		if !b.NetRealized.Equal(b.InflowRealized.Sub(b.OutflowRealized)) {
			errs = append(errs, VerifyError{b.Date, "net realized inconsistent with flows"})
		}
		if !b.NetProjected.Equal(b.InflowProjected.Sub(b.OutflowProjected)) {
			errs = append(errs, VerifyError{b.Date, "net projected inconsistent with flows"})
		}
		if b.Date.Equal(day) {
			want := opening.Add(b.NetRealized)
			if !b.CumulativeBalance.Equal(want) {
				errs = append(errs, VerifyError{b.Date, fmt.Sprintf(
					"anchor balance %s != opening + net realized (%s)", b.CumulativeBalance, want)})
			}
		}
	}
	return errs
}
