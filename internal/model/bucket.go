package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyBucket aggregates one calendar day of the ledger. Flow fields are
// non-negative magnitudes; nets and balances are signed. Buckets are derived
// in full on every run and never mutated incrementally.
type DailyBucket struct {
	Date             time.Time
	InflowRealized   decimal.Decimal
	OutflowRealized  decimal.Decimal
	InflowProjected  decimal.Decimal
	OutflowProjected decimal.Decimal

	NetRealized  decimal.Decimal // InflowRealized - OutflowRealized
	NetProjected decimal.Decimal // InflowProjected - OutflowProjected

	// CumulativeBalance accumulates realized flow only, anchored to the
	// caller's opening balance. ProjectedBalance is the same series with
	// projected flow folded in.
	CumulativeBalance decimal.Decimal
	ProjectedBalance  decimal.Decimal
}
