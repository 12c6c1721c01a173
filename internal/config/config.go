package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fluxo-dev/fluxo/internal/classify"
	"github.com/fluxo-dev/fluxo/internal/model"
)

// Config represents the top-level fluxo.yaml workspace configuration.
type Config struct {
	Business string        `yaml:"business"`
	Sources  SourcesConfig `yaml:"sources"`
	Ledger   LedgerConfig  `yaml:"ledger"`
	Git      GitConfig     `yaml:"git"`
}

// SourceOptions mirrors the per-file toggles of the original workbook: each
// export may or may not use Brazilian number formatting.
type SourceOptions struct {
	LocaleAmounts bool `yaml:"locale_amounts"`
}

// SourcesConfig carries per-kind parsing options and the pending-receipt
// status marker used by the receivables export.
type SourcesConfig struct {
	Paid          SourceOptions `yaml:"paid"`
	Payable       SourceOptions `yaml:"payable"`
	Receivable    SourceOptions `yaml:"receivable"`
	PendingMarker string        `yaml:"pending_marker"`
}

// LedgerConfig holds the default anchoring inputs; both can be overridden on
// the command line per run.
type LedgerConfig struct {
	AnchorDate     string `yaml:"anchor_date,omitempty"` // "2006-01-02"
	OpeningBalance string `yaml:"opening_balance"`
}

// GitConfig controls git integration in the workspace.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a fluxo.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace. The
// ERP exports this tool was built around are Brazilian, so locale formatting
// is on for every source.
func Default(businessName string) *Config {
	return &Config{
		Business: businessName,
		Sources: SourcesConfig{
			Paid:          SourceOptions{LocaleAmounts: true},
			Payable:       SourceOptions{LocaleAmounts: true},
			Receivable:    SourceOptions{LocaleAmounts: true},
			PendingMarker: classify.DefaultPendingMarker,
		},
		Ledger: LedgerConfig{
			OpeningBalance: "0.00",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Fluxo",
			AuthorEmail: "fluxo@localhost",
		},
	}
}

// ClassifyOptions converts the source settings into classifier options.
func (c *Config) ClassifyOptions() classify.Options {
	return classify.Options{
		LocaleAmounts: map[model.SourceKind]bool{
			model.KindPaid:       c.Sources.Paid.LocaleAmounts,
			model.KindPayable:    c.Sources.Payable.LocaleAmounts,
			model.KindReceivable: c.Sources.Receivable.LocaleAmounts,
		},
		PendingMarker: c.Sources.PendingMarker,
	}
}
