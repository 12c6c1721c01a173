package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fluxo-dev/fluxo/internal/config"
	"github.com/fluxo-dev/fluxo/internal/gitops"
	"github.com/fluxo-dev/fluxo/internal/ledger"
	"github.com/fluxo-dev/fluxo/internal/loader"
	"github.com/fluxo-dev/fluxo/internal/model"
	"github.com/fluxo-dev/fluxo/internal/pipeline"
	"github.com/fluxo-dev/fluxo/internal/report"
)

func newGenerateCommand() *cobra.Command {
	var repoDir string
	var anchorDate string
	var openingBalance string
	var verify bool
	var keepFiles bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the daily cash ledger from the files in import/",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runGenerate(absDir, anchorDate, openingBalance, verify, keepFiles, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&anchorDate, "anchor-date", "", "date of the known opening balance (2006-01-02; default: config, else earliest transaction)")
	cmd.Flags().StringVar(&openingBalance, "opening-balance", "", "cash balance on the anchor date (default: config)")
	cmd.Flags().BoolVar(&verify, "verify", false, "re-check ledger invariants after generation")
	cmd.Flags().BoolVar(&keepFiles, "keep-files", false, "leave source files in import/ instead of moving them to processed/")

	return cmd
}

func runGenerate(root, anchorFlag, openingFlag string, verify, keepFiles bool, out io.Writer) error {
	cfg, err := config.Load(filepath.Join(root, "fluxo.yaml"))
	if err != nil {
		return err
	}

	anchor, err := resolveAnchor(anchorFlag, cfg)
	if err != nil {
		return err
	}
	opening, err := resolveOpening(openingFlag, cfg)
	if err != nil {
		return err
	}

	registry := loader.DefaultRegistry()
	files, err := registry.Scan(root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "nothing to process: no source files in import/")
		return nil
	}

	var tables []model.RawTable
	for _, f := range files {
		table, err := registry.Load(f.Path)
		if err != nil {
			return err
		}
		tables = append(tables, table)
	}

	res := pipeline.Run(pipeline.Input{
		Tables:         tables,
		AnchorDate:     anchor,
		OpeningBalance: opening,
		Classify:       cfg.ClassifyOptions(),
	})

	for _, d := range res.Diagnostics {
		for _, w := range d.Warnings {
			fmt.Fprintf(out, "warning: %s: %s\n", d.Source, w)
		}
	}

	if err := writeReports(root, res); err != nil {
		return err
	}

	if res.Empty() {
		fmt.Fprintln(out, "nothing to process: no table produced a transaction (see reports/diagnostics.csv)")
		return nil
	}

	fmt.Fprintf(out, "%d transaction(s) over %d day(s)\n\n", len(res.Transactions), len(res.Buckets))
	if err := report.WriteSummary(out, res.KPIs, res.AnchorDate, opening); err != nil {
		return err
	}

	if verify {
		if errs := ledger.Verify(res.Buckets, res.AnchorDate, opening); len(errs) > 0 {
			msgs := make([]string, len(errs))
			for i, e := range errs {
				msgs[i] = e.Error()
			}
			return fmt.Errorf("ledger verification failed: %s", strings.Join(msgs, "; "))
		}
		fmt.Fprintln(out, "\nledger invariants verified")
	}

	if !keepFiles {
		for _, f := range files {
			if err := loader.MarkProcessed(root, f.Name); err != nil {
				return err
			}
		}
	}

	if cfg.Git.AutoCommit && gitops.IsRepo(root) {
		if err := commitReports(root, cfg, res.AnchorDate); err != nil {
			return err
		}
	}
	return nil
}

func resolveAnchor(flag string, cfg *config.Config) (time.Time, error) {
	text := flag
	if text == "" {
		text = cfg.Ledger.AnchorDate
	}
	if text == "" {
		return time.Time{}, nil // pipeline falls back to the earliest transaction
	}
	t, err := time.ParseInLocation("2006-01-02", text, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing anchor date %q: %w", text, err)
	}
	return t, nil
}

func resolveOpening(flag string, cfg *config.Config) (decimal.Decimal, error) {
	text := flag
	if text == "" {
		text = cfg.Ledger.OpeningBalance
	}
	if text == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing opening balance %q: %w", text, err)
	}
	return d, nil
}

func writeReports(root string, res pipeline.Result) error {
	dir := filepath.Join(root, "reports")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating reports dir: %w", err)
	}

	writers := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"ledger.csv", func(w io.Writer) error { return report.WriteLedger(w, res.Buckets) }},
		{"transactions.csv", func(w io.Writer) error { return report.WriteTransactions(w, res.Transactions) }},
		{"diagnostics.csv", func(w io.Writer) error { return report.WriteDiagnostics(w, res.Diagnostics) }},
	}
	for _, wr := range writers {
		f, err := os.Create(filepath.Join(dir, wr.name))
		if err != nil {
			return fmt.Errorf("creating %s: %w", wr.name, err)
		}
		if err := wr.write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing %s: %w", wr.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", wr.name, err)
		}
	}
	return nil
}

func commitReports(root string, cfg *config.Config, anchor time.Time) error {
	changed, err := gitops.HasChanges(root)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	msg := "ledger: generate for " + anchor.Format("2006-01-02")
	_, err = gitops.CommitAll(root, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	return err
}
