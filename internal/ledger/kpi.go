package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// KPIs are the headline figures derived from a finished bucket sequence.
type KPIs struct {
	// MinimumCumulativeBalance is the cash-need signal: negative means a
	// shortfall somewhere in the period.
	MinimumCumulativeBalance decimal.Decimal
	FinalBalance             decimal.Decimal
	PeriodNetRealized        decimal.Decimal // FinalBalance - opening

	TotalInflowRealized   decimal.Decimal
	TotalOutflowRealized  decimal.Decimal
	TotalInflowProjected  decimal.Decimal
	TotalOutflowProjected decimal.Decimal
}

// Summarize derives KPIs from an anchored bucket sequence. With no buckets
// every figure is zero except the final balance, which is the opening
// balance itself.
func Summarize(buckets []model.DailyBucket, opening decimal.Decimal) KPIs {
	if len(buckets) == 0 {
		return KPIs{MinimumCumulativeBalance: opening, FinalBalance: opening}
	}

	k := KPIs{MinimumCumulativeBalance: buckets[0].CumulativeBalance}
	for _, b := range buckets {
		if b.CumulativeBalance.LessThan(k.MinimumCumulativeBalance) {
			k.MinimumCumulativeBalance = b.CumulativeBalance
		}
		k.TotalInflowRealized = k.TotalInflowRealized.Add(b.InflowRealized)
		k.TotalOutflowRealized = k.TotalOutflowRealized.Add(b.OutflowRealized)
		k.TotalInflowProjected = k.TotalInflowProjected.Add(b.InflowProjected)
		k.TotalOutflowProjected = k.TotalOutflowProjected.Add(b.OutflowProjected)
	}
	k.FinalBalance = buckets[len(buckets)-1].CumulativeBalance
	k.PeriodNetRealized = k.FinalBalance.Sub(opening)
	return k
}
