package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[auth]
jwt_secret = "file-secret"
token_ttl_hours = 2

[slots]
times = ["09:00", "09:30"]
strict = true

[redis]
enabled = true
addr = "redis:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, domain.DefaultAdminEmail, cfg.Auth.AdminEmail)
	assert.Equal(t, domain.SlotPolicy{Times: []string{"09:00", "09:30"}, Strict: true}, cfg.Slots.Policy())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[auth]
jwt_secret = "file-secret"
admin_email = "file@local"
`)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_EMAIL", "owner@wedding.local")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "owner@wedding.local", cfg.Auth.AdminEmail)
	assert.Equal(t, "s3cret", cfg.Auth.AdminPassword)
	assert.Equal(t, domain.DefaultAdminName, cfg.Auth.AdminName)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, domain.DefaultSlotTimes, cfg.Slots.Times)
	assert.False(t, cfg.Slots.Strict)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "malformed toml",
			content: "[server\nhttp_port = ",
			wantErr: ErrReadConfig,
		},
		{
			name:    "missing secret",
			content: "[server]\nhttp_port = 8080\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "duplicate slot",
			content: "[auth]\njwt_secret = \"x\"\n[slots]\ntimes = [\"10:00\", \"10:00\"]\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "events without exchange",
			content: "[auth]\njwt_secret = \"x\"\n[events]\nenabled = true\nexchange = \"\"\n",
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")

			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "wedding", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=wedding sslmode=disable", d.DSN())
}
