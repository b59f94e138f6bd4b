package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/rentbook/internal/amount"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Bali Scoot")
	cfg.Import.SingleDot = "decimal"
	cfg.Import.ContraAccount = "BCA"
	cfg.Insight.Enabled = true

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Rentals")

	assert.Equal(t, "My Rentals", cfg.Business.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "Bank", cfg.Import.ContraAccount)
	assert.Equal(t, "grouping", cfg.Import.SingleDot)
	assert.Equal(t, "Cash", cfg.Manual.ContraAccount)
	assert.False(t, cfg.Insight.Enabled)
	assert.Equal(t, "gemini-2.5-flash", cfg.Insight.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.Insight.APIKeyEnv)
	assert.Equal(t, ":8080", cfg.Server.Addr)

	p, err := cfg.DotPolicy()
	require.NoError(t, err)
	assert.Equal(t, amount.DotGrouping, p)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("business:\n  name: Partial\nimport:\n  single_dot: decimal\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Partial", cfg.Business.Name)
	assert.Equal(t, "Bank", cfg.Import.ContraAccount)
	assert.Equal(t, ":8080", cfg.Server.Addr)

	p, err := cfg.DotPolicy()
	require.NoError(t, err)
	assert.Equal(t, amount.DotDecimal, p)
}

func TestLoad_BadDotPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("import:\n  single_dot: comma\n"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "single-dot policy")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("business: [unclosed"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault_Missing(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(""), cfg)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz")
	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "contra_account: Bank")
	assert.Contains(t, contents, "single_dot: grouping")
	assert.Contains(t, contents, "api_key_env: GEMINI_API_KEY")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RENTBOOK_TEST_KEY=from-file\n"), 0o644))
	t.Setenv("RENTBOOK_TEST_KEY", "")
	require.NoError(t, os.Unsetenv("RENTBOOK_TEST_KEY"))

	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "from-file", os.Getenv("RENTBOOK_TEST_KEY"))
}

func TestLoadEnv_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RENTBOOK_TEST_KEY=from-file\n"), 0o644))
	t.Setenv("RENTBOOK_TEST_KEY", "from-shell")

	require.NoError(t, LoadEnv(envFile))
	assert.Equal(t, "from-shell", os.Getenv("RENTBOOK_TEST_KEY"))
}

func TestInsightReady(t *testing.T) {
	cfg := Default("")
	cfg.Insight.APIKeyEnv = "RENTBOOK_TEST_GEMINI"
	t.Setenv("RENTBOOK_TEST_GEMINI", "secret")

	assert.False(t, cfg.InsightReady(), "disabled")
	cfg.Insight.Enabled = true
	assert.True(t, cfg.InsightReady())
	assert.Equal(t, "secret", cfg.APIKey())

	t.Setenv("RENTBOOK_TEST_GEMINI", " ")
	assert.False(t, cfg.InsightReady())
}
