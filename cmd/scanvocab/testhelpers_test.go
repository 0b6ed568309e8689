package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scanvocab/scanvocab/internal/config"
	"github.com/scanvocab/scanvocab/internal/database"
	"github.com/scanvocab/scanvocab/internal/vocab"
	"github.com/scanvocab/scanvocab/internal/vocab/sqlite"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setLocalOnly forces the on-device backend so command runs never touch the network.
func setLocalOnly(t *testing.T) {
	t.Helper()
	oldLocalOnly := localOnly
	localOnly = true
	t.Cleanup(func() { localOnly = oldLocalOnly })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// openLocalRepository opens the on-device database a command run wrote to,
// for asserting on its rows.
func openLocalRepository(t *testing.T, cfgPath string) vocab.Repository {
	t.Helper()
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)

	db, err := database.OpenSQLite(cfg.Storage)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(context.Background(), db))
	return sqlite.NewRepository(db)
}
