// Package pipeline wires resolution, classification, aggregation, anchoring
// and summarization into one pure run: raw tables in, ledger out. A run has
// no side effects and holds no shared state, so independent runs may execute
// concurrently on their own snapshots.
package pipeline

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fluxo-dev/fluxo/internal/classify"
	"github.com/fluxo-dev/fluxo/internal/ledger"
	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/schema"
)

// Input is one immutable snapshot for a run. A zero AnchorDate defaults to
// the earliest transaction date, matching the original workbook behavior.
type Input struct {
	Tables         []model.RawTable
	AnchorDate     time.Time
	OpeningBalance decimal.Decimal
	Classify       classify.Options
}

// Result is everything a run produces. Nothing in here is fatal: the worst
// case is an empty ledger plus diagnostics explaining every skip.
type Result struct {
	Buckets      []model.DailyBucket
	KPIs         ledger.KPIs
	Transactions []model.Transaction
	Diagnostics  []model.TableDiagnostic
	AnchorDate   time.Time // resolved anchor actually used
}

// Empty reports whether no table contributed any transaction.
func (r Result) Empty() bool { return len(r.Transactions) == 0 }

// Run executes the full pipeline over one input snapshot.
func Run(in Input) Result {
	rules := classify.DefaultRegistry()

	var res Result
	for _, table := range in.Tables {
		kind, warnings := schema.Resolve(table)
		diag := model.TableDiagnostic{Source: table.Source, Kind: kind, Warnings: warnings}

		if rule := rules.Get(kind); rule != nil {
			txns, ruleWarnings := rule.Classify(table, in.Classify)
			res.Transactions = append(res.Transactions, txns...)
			diag.Warnings = append(diag.Warnings, ruleWarnings...)
		}
		res.Diagnostics = append(res.Diagnostics, diag)
	}

	res.AnchorDate = in.AnchorDate
	if res.AnchorDate.IsZero() {
		res.AnchorDate = earliestDate(res.Transactions)
	}

	res.Buckets = ledger.Aggregate(res.Transactions, res.AnchorDate)
	ledger.ApplyAnchor(res.Buckets, res.AnchorDate, in.OpeningBalance)
	res.KPIs = ledger.Summarize(res.Buckets, in.OpeningBalance)
	return res
}

func earliestDate(txns []model.Transaction) time.Time {
	var min time.Time
	for _, tx := range txns {
		if min.IsZero() || tx.Date.Before(min) {
			min = tx.Date
		}
	}
	return min
}
