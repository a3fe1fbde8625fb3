package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veridian-datagen/internal/generator"
	"veridian-datagen/models"
)

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000, cfg.Generation.Total)
	assert.Equal(t, 50, cfg.Generation.Traps)
	assert.Equal(t, []string{SinkJSON}, cfg.Output.Sinks)
	assert.Equal(t, "api/data/pune_properties.json", cfg.Output.JSONPath)

	alloc, err := generator.Plan(cfg.Generation.Total, cfg.Generation.Distribution)
	require.NoError(t, err)
	assert.Equal(t, generator.Allocation{
		models.Apartment: 500, models.Villa: 150, models.Plot: 200, models.Commercial: 150,
	}, alloc)
}

func TestDev_IsValidAndSeeded(t *testing.T) {
	cfg := Dev()
	require.NoError(t, cfg.Validate())
	assert.NotZero(t, cfg.Generation.Seed)
	assert.Less(t, cfg.Generation.Total, Default().Generation.Total)
}

func TestDefaultTables(t *testing.T) {
	locs := DefaultLocalities()
	require.Len(t, locs, 8)
	reg, err := generator.NewRegistry(locs)
	require.NoError(t, err)
	baner, err := reg.Get("Baner")
	require.NoError(t, err)
	assert.Equal(t, 1.3, baner.PriceMultiplier)
	assert.Equal(t, 55, baner.AppreciationBase)

	_, err = generator.NewSynthesizer(reg, DefaultCatalog(), generator.WithSeed(1))
	assert.NoError(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATAGEN_TOTAL", "200")
	t.Setenv("DATAGEN_TRAPS", "10")
	t.Setenv("DATAGEN_SEED", "7")
	t.Setenv("DATAGEN_DISTRIBUTION", "Apartment:0.25, Villa:0.25,Plot:0.25,Commercial:0.25")
	t.Setenv("DATAGEN_SINKS", "json, csv,sql")
	t.Setenv("PG_DSN", "postgres://localhost/veridian?sslmode=disable")
	t.Setenv("DATAGEN_INITIAL_BACKOFF", "500ms")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Generation.Total)
	assert.Equal(t, 10, cfg.Generation.Traps)
	assert.Equal(t, int64(7), cfg.Generation.Seed)
	assert.Equal(t, 0.25, cfg.Generation.Distribution[models.Villa])
	assert.Equal(t, []string{SinkJSON, SinkCSV, SinkSQL}, cfg.Output.Sinks)
	assert.Equal(t, "postgres://localhost/veridian?sslmode=disable", cfg.SQL.DSN)
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.InitialBackoff)
}

func TestLoad_ExplicitDSNWinsOverPGDSN(t *testing.T) {
	t.Setenv("DATAGEN_SINKS", "sql")
	t.Setenv("PG_DSN", "postgres://pg")
	t.Setenv("DATAGEN_SQL_DSN", "oracle://ora")
	t.Setenv("DATAGEN_SQL_DRIVER", "oracle")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "oracle://ora", cfg.SQL.DSN)
	assert.Equal(t, DriverOracle, cfg.SQL.Driver)
}

func TestLoad_BadNumberKeepsDefault(t *testing.T) {
	t.Setenv("DATAGEN_TOTAL", "lots")
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Generation.Total)
}

func TestLoad_DevProfile(t *testing.T) {
	t.Setenv("DATAGEN_PROFILE", "dev")
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, Dev().Generation.Total, cfg.Generation.Total)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATAGEN_TRAPS=12\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DATAGEN_TRAPS") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Generation.Traps)
}

func TestLoad_Rejects(t *testing.T) {
	tests := map[string]map[string]string{
		"traps over total":   {"DATAGEN_TOTAL": "10", "DATAGEN_TRAPS": "11"},
		"bad distribution":   {"DATAGEN_DISTRIBUTION": "Apartment:0.5,Villa:0.4"},
		"unknown category":   {"DATAGEN_DISTRIBUTION": "Castle:1"},
		"unknown sink":       {"DATAGEN_SINKS": "json,ftp"},
		"duplicate sink":     {"DATAGEN_SINKS": "csv,csv"},
		"s3 without bucket":  {"DATAGEN_SINKS": "s3"},
		"amqp without url":   {"DATAGEN_SINKS": "amqp"},
		"dynamo w/o table":   {"DATAGEN_SINKS": "dynamodb"},
		"unknown sql driver": {"DATAGEN_SINKS": "sql", "DATAGEN_SQL_DSN": "x", "DATAGEN_SQL_DRIVER": "mysql"},
		"backoff inverted":   {"DATAGEN_INITIAL_BACKOFF": "20s", "DATAGEN_MAX_BACKOFF": "1s"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load(missingEnvFile(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}

func TestValidate_WrapsGeneratorSentinel(t *testing.T) {
	cfg := Default()
	cfg.Generation.Distribution = models.Distribution{models.Apartment: 0.9}
	err := cfg.Validate()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.True(t, errors.Is(err, generator.ErrInvalidDistribution))
}

func TestParseDistribution(t *testing.T) {
	d, err := ParseDistribution("Apartment:0.5,Villa:0.15,Plot:0.2,Commercial:0.15")
	require.NoError(t, err)
	assert.Equal(t, DefaultDistribution(), d)

	d, err = ParseDistribution("Plot:1")
	require.NoError(t, err)
	assert.Equal(t, models.Distribution{models.Plot: 1}, d)

	for _, raw := range []string{"", "Apartment", "Apartment:x", "Villa:0.5,Villa:0.5", "villa:1"} {
		_, err := ParseDistribution(raw)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "input %q: got %v", raw, err)
	}
}
