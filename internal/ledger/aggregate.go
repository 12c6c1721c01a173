// Package ledger turns the unified transaction set into a gap-free daily
// series with an anchored cumulative balance, and derives summary figures
// from it.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/normalize"
)

// Aggregate buckets transactions by calendar day over the contiguous span
// from min(anchor, earliest) to max(anchor, latest), inclusive. Days without
// transactions get all-zero flow fields. With no transactions the span is the
// anchor day alone; with no transactions and a zero anchor the result is
// empty.
func Aggregate(txns []model.Transaction, anchor time.Time) []model.DailyBucket {
	type flows struct {
		inR, outR, inP, outP decimal.Decimal
	}
	byDay := make(map[time.Time]*flows)
	var first, last time.Time
	for _, tx := range txns {
		day := normalize.Day(tx.Date)
		f := byDay[day]
		if f == nil {
			f = &flows{}
			byDay[day] = f
		}
		mag := tx.Magnitude()
		switch {
		case tx.Status == model.StatusRealized && tx.Inflow():
			f.inR = f.inR.Add(mag)
		case tx.Status == model.StatusRealized:
			f.outR = f.outR.Add(mag)
		case tx.Inflow():
			f.inP = f.inP.Add(mag)
		default:
			f.outP = f.outP.Add(mag)
		}
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}

	if !anchor.IsZero() {
		day := normalize.Day(anchor)
		if first.IsZero() || day.Before(first) {
			first = day
		}
		if last.IsZero() || day.After(last) {
			last = day
		}
	}
	if first.IsZero() {
		return nil
	}

	var buckets []model.DailyBucket
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		b := model.DailyBucket{Date: day}
		if f := byDay[day]; f != nil {
			b.InflowRealized = f.inR
			b.OutflowRealized = f.outR
			b.InflowProjected = f.inP
			b.OutflowProjected = f.outP
		}
		b.NetRealized = b.InflowRealized.Sub(b.OutflowRealized)
		b.NetProjected = b.InflowProjected.Sub(b.OutflowProjected)
		buckets = append(buckets, b)
	}
	return buckets
}
