package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFrom_Defaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, LoadFrom(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env")))

	assert.Equal(t, "local", AppEnv())
	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, "catalog.db", DatabaseDSN())
	assert.Equal(t, slog.LevelInfo, LogLevel())
	assert.Empty(t, RedisAddr())
	assert.Empty(t, PushgatewayURL())
}

func TestLoadFrom_MergeOrder(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "app.json", `{
		"db_driver": "postgres",
		"log_level": "debug",
		"redis_addr": "cache:6379",
		"nested": {"ignored": true}
	}`)
	env := writeFile(t, dir, ".env", "# local overrides\nREDIS_ADDR=\"localhost:6380\"\nPUSHGATEWAY_URL=http://push:9091\n")

	t.Setenv("LOG_LEVEL", "warn")

	require.NoError(t, LoadFrom(cfg, env))

	assert.Equal(t, "postgres", DatabaseDriver())
	assert.Contains(t, DatabaseDSN(), "dbname=catalog")
	assert.Equal(t, "localhost:6380", RedisAddr())
	assert.Equal(t, "http://push:9091", PushgatewayURL())
	assert.Equal(t, slog.LevelWarn, LogLevel())
	assert.Empty(t, get("NESTED", ""))
}

func TestDatabaseDriver_UnknownFallsBack(t *testing.T) {
	dir := t.TempDir()
	env := writeFile(t, dir, ".env", "DB_DRIVER=oracle\nDATABASE_DSN=file:test.db\n")

	require.NoError(t, LoadFrom("", env))

	assert.Equal(t, "sqlite", DatabaseDriver())
	assert.Equal(t, "file:test.db", DatabaseDSN())
}

func TestLoadFrom_MalformedConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "app.json", `{not json`)

	err := LoadFrom(cfg, "")
	assert.Error(t, err)
}
