package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/shoe-card-service/internal/app/card/domain"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // keep a developer .env out of the test
	for _, k := range []string{"HTTP_ADDR", "CURRENCY_CODE", "NEW_RELEASE_WINDOW", "PALETTE_FILE", "BATCH_CONCURRENCY", "APP_ENV"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, "USD", cfg.CurrencyCode)
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, 30*24*time.Hour, cfg.NewReleaseWindow)
	assert.Equal(t, 8, cfg.BatchConcurrency)
	assert.Equal(t, domain.DefaultPalette(), cfg.Palette)
	assert.False(t, cfg.DevMode)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	palette := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(palette, []byte("primary: \"#000000\"\nweights:\n  medium: 550\n"), 0o600))

	t.Setenv("NEW_RELEASE_WINDOW", "168h")
	t.Setenv("BATCH_CONCURRENCY", "2")
	t.Setenv("PALETTE_FILE", palette)
	t.Setenv("APP_ENV", "dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7*24*time.Hour, cfg.NewReleaseWindow)
	assert.Equal(t, 2, cfg.BatchConcurrency)
	assert.Equal(t, "#000000", cfg.Palette.Primary)
	assert.Equal(t, 550, cfg.Palette.Weights.Medium)
	// Untouched keys keep their defaults.
	assert.Equal(t, domain.DefaultPalette().Secondary, cfg.Palette.Secondary)
	assert.Equal(t, domain.DefaultPalette().Weights.Bold, cfg.Palette.Weights.Bold)
	assert.True(t, cfg.DevMode)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("NEW_RELEASE_WINDOW", "a month")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("NEW_RELEASE_WINDOW", "-1h")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("NEW_RELEASE_WINDOW", "")
	t.Setenv("BATCH_CONCURRENCY", "many")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("BATCH_CONCURRENCY", "")
	t.Setenv("PALETTE_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = Load()
	assert.Error(t, err)
}

func TestParsePalette_Invalid(t *testing.T) {
	_, err := ParsePalette([]byte("primary: [unterminated"))
	assert.Error(t, err)
}
