// Package report renders a finished run: CSV files for the daily ledger, the
// transaction detail and the per-table diagnostics, plus a plain-text KPI
// summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fluxo-dev/fluxo/internal/model"
)

// LedgerHeader is the CSV header for ledger.csv.
const LedgerHeader = "date,inflow_realized,outflow_realized,inflow_projected,outflow_projected,net_realized,net_projected,cumulative_balance,projected_balance"

const (
	ledgerFields  = 9
	dateFormat    = "2006-01-02"
	colDate       = 0
	colInR        = 1
	colOutR       = 2
	colInP        = 3
	colOutP       = 4
	colNetR       = 5
	colNetP       = 6
	colBalance    = 7
	colProjectedB = 8
)

// WriteLedger writes the daily bucket sequence as CSV (including header).
func WriteLedger(w io.Writer, buckets []model.DailyBucket) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(LedgerHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, b := range buckets {
		if err := cw.Write(MarshalBucket(b)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalBucket converts a DailyBucket to a CSV row.
func MarshalBucket(b model.DailyBucket) []string {
	row := make([]string, ledgerFields)
	row[colDate] = b.Date.Format(dateFormat)
	row[colInR] = b.InflowRealized.StringFixed(2)
	row[colOutR] = b.OutflowRealized.StringFixed(2)
	row[colInP] = b.InflowProjected.StringFixed(2)
	row[colOutP] = b.OutflowProjected.StringFixed(2)
	row[colNetR] = b.NetRealized.StringFixed(2)
	row[colNetP] = b.NetProjected.StringFixed(2)
	row[colBalance] = b.CumulativeBalance.StringFixed(2)
	row[colProjectedB] = b.ProjectedBalance.StringFixed(2)
	return row
}

// TransactionHeader is the CSV header for transactions.csv.
const TransactionHeader = "date,amount,status,source"

// WriteTransactions writes the unfiltered transaction detail as CSV.
// The identity key is a dedup internal and is not exported.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(TransactionHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txns {
		row := []string{
			tx.Date.Format(dateFormat),
			tx.Amount.StringFixed(2),
			string(tx.Status),
			tx.Source,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// DiagnosticHeader is the CSV header for diagnostics.csv.
const DiagnosticHeader = "source,kind,warnings"

// WriteDiagnostics writes per-table diagnostics as CSV, one row per table
// with warnings joined by "; ".
func WriteDiagnostics(w io.Writer, diags []model.TableDiagnostic) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(DiagnosticHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, d := range diags {
		row := []string{d.Source, string(d.Kind), strings.Join(d.Warnings, "; ")}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
