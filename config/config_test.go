package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"PORT", "DB_DRIVER", "JWT_TTL", "JWT_SECRET", "RATE_LIMIT", "RATE_INTERVAL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 50, cfg.RateLimit)
	assert.Equal(t, time.Second, cfg.RateInterval)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yml := "port: \"9090\"\ndb_driver: mysql\njwt_ttl: 2h\nkafka_topic: from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "application.yml"), []byte(yml), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("RATE_INTERVAL", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Minute, cfg.RateInterval)
	assert.Equal(t, "from-file", cfg.KafkaTopic)
	assert.True(t, cfg.AuthEnabled())
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
	}{
		{
			name:     "explicit dsn wins",
			cfg:      Config{DBDriver: "mysql", DBDSN: "root@tcp(db)/x"},
			expected: "root@tcp(db)/x",
		},
		{
			name:     "mysql",
			cfg:      Config{DBDriver: "mysql", DBUser: "app", DBPassword: "pw", DBHost: "db", DBName: "restaurant"},
			expected: "app:pw@tcp(db:3306)/restaurant?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name:     "postgres",
			cfg:      Config{DBDriver: "postgres", DBUser: "app", DBPassword: "pw", DBHost: "db", DBPort: "6543", DBName: "restaurant"},
			expected: "host=db port=6543 user=app password=pw dbname=restaurant sslmode=disable TimeZone=UTC",
		},
		{
			name:     "sqlite",
			cfg:      Config{DBDriver: "sqlite", DBName: "restaurant"},
			expected: "restaurant.db?_fk=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}

func TestConfig_Dialector(t *testing.T) {
	for _, driver := range []string{"sqlite", "mysql", "postgres"} {
		d, err := (&Config{DBDriver: driver, DBName: "x"}).Dialector()
		require.NoError(t, err)
		assert.Equal(t, driver, d.Name())
	}

	_, err := (&Config{DBDriver: "oracle"}).Dialector()
	assert.Error(t, err)
}

func TestInitDB_SQLite(t *testing.T) {
	chdirTemp(t)

	db, err := InitDB(&Config{DBDriver: "sqlite", DBDSN: "file::memory:", AppEnv: "test"})
	require.NoError(t, err)
	assert.NoError(t, db.Exec("SELECT 1").Error)
}
