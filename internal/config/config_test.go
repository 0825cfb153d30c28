package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[logs]
file = "logs/test.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "booking-gateway"

[holidaze]
url = "https://v2.api.noroff.dev/holidaze"
timeout = 10

[cache]
backend = "memory"
ttl_seconds = 300

[booking]
extra_guest_fee = 20.0
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "https://v2.api.noroff.dev/holidaze", cfg.Holidaze.URL)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 300, cfg.Cache.TTLSeconds)
	require.NotNil(t, cfg.Booking.ExtraGuestFee)
	assert.Equal(t, 20.0, *cfg.Booking.ExtraGuestFee)
}

func TestLoad_ExplicitZeroGuestFeePreserved(t *testing.T) {
	content := `
[server]
http_port = 8080

[holidaze]
url = "https://v2.api.noroff.dev/holidaze"

[booking]
extra_guest_fee = 0.0
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	// Явный ноль - осознанная настройка, дефолт не подставляется
	require.NotNil(t, cfg.Booking.ExtraGuestFee)
	assert.Equal(t, 0.0, *cfg.Booking.ExtraGuestFee)
}

func TestLoad_UnsetGuestFeeGetsDefault(t *testing.T) {
	content := `
[server]
http_port = 8080

[holidaze]
url = "https://v2.api.noroff.dev/holidaze"
`
	cfg, err := Load(writeConfig(t, content))
	require.NoError(t, err)

	require.NotNil(t, cfg.Booking.ExtraGuestFee)
	assert.Equal(t, 20.0, *cfg.Booking.ExtraGuestFee)
}

func TestLoad_NegativeGuestFeeRejected(t *testing.T) {
	content := `
[server]
http_port = 8080

[holidaze]
url = "https://v2.api.noroff.dev/holidaze"

[booking]
extra_guest_fee = -5.0
`
	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EXTRA_GUEST_FEE", "35.5")

	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	require.NotNil(t, cfg.Booking.ExtraGuestFee)
	assert.Equal(t, 35.5, *cfg.Booking.ExtraGuestFee)
}

func TestLoad_MissingHolidazeURL(t *testing.T) {
	content := `
[server]
http_port = 8080
`
	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_RedisBackendRequiresAddr(t *testing.T) {
	content := `
[server]
http_port = 8080

[holidaze]
url = "https://v2.api.noroff.dev/holidaze"

[cache]
backend = "redis"
`
	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_UnknownCacheBackend(t *testing.T) {
	content := `
[server]
http_port = 8080

[holidaze]
url = "https://v2.api.noroff.dev/holidaze"

[cache]
backend = "memcached"
`
	_, err := Load(writeConfig(t, content))
	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
