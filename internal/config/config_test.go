package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"MAP_PATH", "DB_DRIVER", "DB_PATH", "DATABASE_URL", "HUB", "PARCEL_COUNT", "TRIALS", "SIM_SEED", "MAX_TURNS", "WORKERS", "PORT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, Config{
		DBPath:      "data/app.db",
		ParcelCount: 5,
		Trials:      100,
		Seed:        1,
		Workers:     4,
		Port:        "8080",
	}, cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("DATABASE_URL", "postgres://localhost/village")
	t.Setenv("HUB", "Marketplace")
	t.Setenv("TRIALS", "20")
	t.Setenv("SIM_SEED", "99")
	t.Setenv("MAX_TURNS", "300")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "pgx", cfg.DBDriver)
	assert.Equal(t, "Marketplace", cfg.Hub)
	assert.Equal(t, 20, cfg.Trials)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, 300, cfg.MaxTurns)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]map[string]string{
		"not a number":     {"TRIALS": "many"},
		"negative seed":    {"SIM_SEED": "-1"},
		"zero trials":      {"TRIALS": "0"},
		"unknown driver":   {"DB_DRIVER": "mysql"},
		"pgx without dsn":  {"DB_DRIVER": "pgx", "DATABASE_URL": ""},
		"negative max":     {"MAX_TURNS": "-5"},
		"negative parcels": {"PARCEL_COUNT": "-2"},
		"negative workers": {"WORKERS": "-1"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
