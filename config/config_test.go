package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode":      "disable",
			"maxOpenConns": 20,
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"aligns camel case segments", "POSTGRES_SSLMODE", "postgres.sslMode"},
		{"aligns nested pool keys", "POSTGRES_MAXOPENCONNS", "postgres.maxOpenConns"},
		{"keeps unknown segments lowercase", "REDIS_ADDR", "redis.addr"},
		{"aligns body size key", "HTTP_MAXREQUESTBODYSIZE", "http.maxRequestBodySize"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.raw, existing))
		})
	}
}

func TestPostgresConfigDSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "storemgr",
		Password: "secret",
		DBName:   "storemgr",
		Timezone: "UTC",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "host=db.internal port=5432 user=storemgr password=secret dbname=storemgr sslmode=disable TimeZone=UTC", dsn)
}
