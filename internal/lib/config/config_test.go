package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"user-directory/internal/lib/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env: "prod"
http_server:
  address: "0.0.0.0:9090"
  read_timeout: 2s
database:
  url: "postgres://u:p@db:5432/users?sslmode=disable"
auth:
  admin_secret: "a"
  user_secret: "u"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTPServer.Address)
	assert.Equal(t, 2*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.WriteTimeout)
	assert.Equal(t, "postgres://u:p@db:5432/users?sslmode=disable", cfg.Database.URL)
	assert.True(t, cfg.Database.RunMigrations)
	assert.Equal(t, "a", cfg.Auth.AdminSecret)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://override")
	t.Setenv("USER_JWT_SECRET", "from-env")

	cfg, err := config.Load(writeConfig(t, sampleConfig))

	require.NoError(t, err)
	assert.Equal(t, "postgres://override", cfg.Database.URL)
	assert.Equal(t, "from-env", cfg.Auth.UserSecret)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}
