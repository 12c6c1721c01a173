package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommitCycle(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir))

	changed, err := HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, changed, "fresh repo has nothing to commit")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.csv"), []byte("date\n"), 0o644))
	changed, err = HasChanges(dir)
	require.NoError(t, err)
	assert.True(t, changed)

	hash, err := CommitAll(dir, "ledger: generate", "Fluxo", "fluxo@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	changed, err = HasChanges(dir)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestIsRepo_PlainDir(t *testing.T) {
	assert.False(t, IsRepo(t.TempDir()))
}
