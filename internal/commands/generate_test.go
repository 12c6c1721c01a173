package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxo-dev/fluxo/internal/config"
)

// workspace scaffolds a minimal workspace without git, so tests do not
// depend on a git installation.
func workspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "import"), 0o755))

	cfg := config.Default("Test Biz")
	cfg.Git.AutoCommit = false
	require.NoError(t, config.Save(filepath.Join(dir, "fluxo.yaml"), cfg))
	return dir
}

func stage(t *testing.T, dir, name string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", name), data, 0o644))
}

func TestGenerate_EndToEnd(t *testing.T) {
	dir := workspace(t)
	stage(t, dir, "pagas.csv")
	stage(t, dir, "a_pagar.csv")

	var out bytes.Buffer
	require.NoError(t, runGenerate(dir, "2024-02-01", "500.00", true, false, &out))

	// Two paid rows survive dedup, one payable row survives its bad sibling.
	assert.Contains(t, out.String(), "3 transaction(s)")
	assert.Contains(t, out.String(), "1 duplicate allocation row(s) collapsed")
	assert.Contains(t, out.String(), "unparseable due date")
	assert.Contains(t, out.String(), "Opening balance on 2024-02-01: 500.00")
	assert.Contains(t, out.String(), "Final balance:          -750.00")
	assert.Contains(t, out.String(), "ledger invariants verified")

	ledgerCSV, err := os.ReadFile(filepath.Join(dir, "reports", "ledger.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(ledgerCSV)), "\n")
	// 2024-02-01 .. 2024-03-10 is 39 days, plus the header.
	assert.Len(t, lines, 40)
	assert.Contains(t, lines[1], "2024-02-01,0.00,1000.00")

	_, err = os.Stat(filepath.Join(dir, "reports", "transactions.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "reports", "diagnostics.csv"))
	assert.NoError(t, err)

	// Consumed files moved to processed/.
	_, err = os.Stat(filepath.Join(dir, "import", "processed", "pagas.csv"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "import", "pagas.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerate_KeepFiles(t *testing.T) {
	dir := workspace(t)
	stage(t, dir, "pagas.csv")

	var out bytes.Buffer
	require.NoError(t, runGenerate(dir, "", "", false, true, &out))

	_, err := os.Stat(filepath.Join(dir, "import", "pagas.csv"))
	assert.NoError(t, err, "--keep-files leaves sources in place")
}

func TestGenerate_DefaultAnchorFromData(t *testing.T) {
	dir := workspace(t)
	stage(t, dir, "pagas.csv")

	var out bytes.Buffer
	require.NoError(t, runGenerate(dir, "", "", false, true, &out))
	assert.Contains(t, out.String(), "Opening balance on 2024-02-01: 0.00",
		"anchor defaults to the earliest transaction date")
}

func TestGenerate_NoFiles(t *testing.T) {
	dir := workspace(t)

	var out bytes.Buffer
	require.NoError(t, runGenerate(dir, "", "", false, false, &out))
	assert.Contains(t, out.String(), "nothing to process: no source files")
}

func TestGenerate_OnlyUnrecognizedTables(t *testing.T) {
	dir := workspace(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "import", "estoque.csv"),
		[]byte("Produto;Quantidade\ncimento;10\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runGenerate(dir, "", "", false, false, &out))
	assert.Contains(t, out.String(), "nothing to process: no table produced a transaction")
	assert.Contains(t, out.String(), "warning: estoque.csv")

	// Unconsumed input stays put for the user to fix.
	_, err := os.Stat(filepath.Join(dir, "import", "estoque.csv"))
	assert.NoError(t, err)

	diag, err := os.ReadFile(filepath.Join(dir, "reports", "diagnostics.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(diag), "estoque.csv,unrecognized")
}

func TestGenerate_BadAnchorFlag(t *testing.T) {
	dir := workspace(t)
	stage(t, dir, "pagas.csv")

	var out bytes.Buffer
	err := runGenerate(dir, "01/02/2024", "", false, true, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing anchor date")
}

func TestGenerate_MissingConfig(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(t.TempDir(), "", "", false, false, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
