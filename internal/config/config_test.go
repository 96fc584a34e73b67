package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(m map[string]string) Getenv {
	return func(key string) string { return m[key] }
}

func TestLoadClient_Defaults(t *testing.T) {
	cfg, err := LoadClient(mapEnv(nil))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.APIURL)
	assert.Equal(t, 20*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 8*time.Second, cfg.SlowThreshold)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, DefaultPolicy(), cfg.Policy)
}

func TestLoadClient_FromEnv(t *testing.T) {
	cfg, err := LoadClient(mapEnv(map[string]string{
		"MARKETSYNC_API_URL":        "https://shop.example.com",
		"MARKETSYNC_ANON_KEY":       "anon",
		"MARKETSYNC_HTTP_TIMEOUT":   "15s",
		"MARKETSYNC_SLOW_THRESHOLD": "bogus",
		"MARKETSYNC_LOG_LEVEL":      "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "https://shop.example.com", cfg.APIURL)
	assert.Equal(t, "anon", cfg.AnonKey)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	// при некорректном значении остаётся значение по умолчанию
	assert.Equal(t, 8*time.Second, cfg.SlowThreshold)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadClient_PolicyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.toml")
	content := `
failure_threshold = 5

[intervals]
cart = "3s"
ping = "1s"

[stock]
remove_at_or_below = 1
clamp = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadClient(mapEnv(map[string]string{"MARKETSYNC_POLICY_FILE": path}))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Policy.FailureThreshold)
	assert.Equal(t, 3*time.Second, cfg.Policy.CartInterval)
	assert.Equal(t, time.Second, cfg.Policy.PingInterval)
	assert.Equal(t, 30*time.Second, cfg.Policy.ProductsInterval)
	assert.Equal(t, 1, cfg.Policy.RemoveAtOrBelow)
	assert.False(t, cfg.Policy.ClampToStock)
}

func TestLoadPolicy_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "bad interval", content: "[intervals]\ncart = \"soon\"\n"},
		{name: "zero threshold", content: "failure_threshold = 0\n"},
		{name: "negative stock", content: "[stock]\nremove_at_or_below = -1\n"},
		{name: "not toml", content: "this is = = not toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			_, err := LoadPolicy(path, DefaultPolicy())
			assert.Error(t, err)
		})
	}

	_, err := LoadPolicy(filepath.Join(dir, "missing.toml"), DefaultPolicy())
	assert.Error(t, err)
}

func TestLoadServer(t *testing.T) {
	cfg := LoadServer(mapEnv(map[string]string{
		"MARKETSYNC_ADDR":       ":9090",
		"MARKETSYNC_ACCESS_TTL": "1h",
		"MARKETSYNC_RATE_LIMIT": "-4",

		"MARKETSYNC_ADMIN_EMAILS": " Boss@Example.com, ,ops@example.com",
	}))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, 300, cfg.RateLimit)
	assert.Equal(t, []string{"boss@example.com", "ops@example.com"}, cfg.AdminEmails)
}

func TestLoadDotEnv(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MARKETSYNC_TEST_DOTENV=loaded\n"), 0600))
	t.Cleanup(func() { _ = os.Unsetenv("MARKETSYNC_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("MARKETSYNC_TEST_DOTENV"))
}
