package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxStatus says whether a cash movement has already happened or is expected.
type TxStatus string

const (
	StatusRealized  TxStatus = "realized"
	StatusProjected TxStatus = "projected"
)

// Transaction is the canonical unit of cash movement produced by classification.
// Positive amounts are inflows, negative amounts are outflows; the sign is
// assigned by the classifier, never copied from the source text.
type Transaction struct {
	Date        time.Time       // calendar day, midnight UTC
	Amount      decimal.Decimal // signed
	Status      TxStatus
	Source      string // origin table, for traceability
	IdentityKey string // dedup only, never displayed
}

// Inflow reports whether the transaction adds cash.
func (t Transaction) Inflow() bool { return t.Amount.IsPositive() }

// Magnitude returns the unsigned amount.
func (t Transaction) Magnitude() decimal.Decimal { return t.Amount.Abs() }
