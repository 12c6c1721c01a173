package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/normalize"
)

// ApplyAnchor fills the balance series of a contiguous bucket sequence. The
// balance is defined by a single prefix-sum rule relative to the anchor:
//
//	balance(anchor) = opening + net(anchor)
//	balance(D)      = balance(D-1) + net(D)      for D > anchor
//	balance(D)      = balance(D+1) - net(D+1)    for D < anchor
//
// Both directions are the same formula walked outward from the anchor, so
// forward and backward iteration agree by construction. CumulativeBalance
// uses realized net only; ProjectedBalance uses realized plus projected.
// The anchor must lie within the bucket span (Aggregate guarantees it).
func ApplyAnchor(buckets []model.DailyBucket, anchor time.Time, opening decimal.Decimal) {
	if len(buckets) == 0 {
		return
	}
	day := normalize.Day(anchor)
	idx := daysBetween(buckets[0].Date, day)
	if idx < 0 || idx >= len(buckets) {
		return
	}

	realized := func(b model.DailyBucket) decimal.Decimal { return b.NetRealized }
	combined := func(b model.DailyBucket) decimal.Decimal { return b.NetRealized.Add(b.NetProjected) }

	anchorSeries(buckets, idx, opening, realized, func(b *model.DailyBucket, v decimal.Decimal) {
		b.CumulativeBalance = v
	})
	anchorSeries(buckets, idx, opening, combined, func(b *model.DailyBucket, v decimal.Decimal) {
		b.ProjectedBalance = v
	})
}

// anchorSeries walks outward from the anchor index applying the prefix-sum
// rule for one net function.
func anchorSeries(
	buckets []model.DailyBucket,
	idx int,
	opening decimal.Decimal,
	net func(model.DailyBucket) decimal.Decimal,
	set func(*model.DailyBucket, decimal.Decimal),
) {
	at := opening.Add(net(buckets[idx]))
	set(&buckets[idx], at)

	bal := at
	for i := idx + 1; i < len(buckets); i++ {
		bal = bal.Add(net(buckets[i]))
		set(&buckets[i], bal)
	}

	bal = at
	for i := idx - 1; i >= 0; i-- {
		bal = bal.Sub(net(buckets[i+1]))
		set(&buckets[i], bal)
	}
}

// daysBetween returns the whole days from a to b (negative when b precedes a).
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
