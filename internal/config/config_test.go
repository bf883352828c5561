package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, BackendMongo, cfg.Backend)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 5, cfg.PageSize)
	assert.Equal(t, "books", cfg.Mongo.Collection)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BOOKQ_BACKEND", "postgres")
	t.Setenv("BOOKQ_POSTGRES_DSN", "postgres://u:p@db:5432/books")
	t.Setenv("BOOKQ_TIMEOUT", "250ms")
	t.Setenv("BOOKQ_PAGE_SIZE", "10")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "postgres://u:p@db:5432/books", cfg.Postgres.DSN)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, 10, cfg.PageSize)
}

func TestLoad_ExplicitValueWins(t *testing.T) {
	t.Setenv("BOOKQ_BACKEND", "postgres")
	v := New()
	v.Set("backend", "mongo")

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, BackendMongo, cfg.Backend)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Backend:  BackendMongo,
			Timeout:  time.Second,
			PageSize: 5,
			Mongo:    MongoConfig{URI: "mongodb://localhost", Database: "db", Collection: "books"},
			HTTP:     HTTPConfig{RateLimit: 10, Burst: 20, MaxBodyBytes: 1 << 20},
		}
	}

	t.Run("valid", func(t *testing.T) {
		c := valid()
		assert.NoError(t, c.Validate())
	})

	t.Run("unknown backend", func(t *testing.T) {
		c := valid()
		c.Backend = "redis"
		assert.True(t, errors.Is(c.Validate(), ErrUnknownBackend))
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		c := valid()
		c.Backend = BackendPostgres
		assert.Error(t, c.Validate())
	})

	t.Run("zero timeout", func(t *testing.T) {
		c := valid()
		c.Timeout = 0
		assert.Error(t, c.Validate())
	})

	t.Run("zero page size", func(t *testing.T) {
		c := valid()
		c.PageSize = 0
		assert.Error(t, c.Validate())
	})

	t.Run("zero rate limit", func(t *testing.T) {
		c := valid()
		c.HTTP.RateLimit = 0
		assert.Error(t, c.Validate())
	})

	t.Run("zero max body bytes", func(t *testing.T) {
		c := valid()
		c.HTTP.MaxBodyBytes = 0
		assert.Error(t, c.Validate())
	})
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")

	if err := os.WriteFile(p, []byte("BOOKQ_BACKEND=postgres\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("BOOKQ_BACKEND", "mongo")

	cwd, _ := os.Getwd()
	_ = os.Chdir(tmp)
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadEnvFiles()

	if got := os.Getenv("BOOKQ_BACKEND"); got != "mongo" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
