// Package config loads client and gateway settings from the environment,
// an optional .env file and an optional TOML sync-policy file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Getenv is the lookup used by the loaders; tests pass a map-backed function.
type Getenv func(key string) string

// Client holds the settings of the marketplace client.
type Client struct {
	APIURL        string
	AnonKey       string
	DBPath        string
	SessionSecret string
	PolicyFile    string
	Policy        Policy
	HTTPTimeout   time.Duration
	SlowThreshold time.Duration
	LogLevel      slog.Level
}

// Server holds the settings of the reference function gateway.
type Server struct {
	Addr      string
	DBPath    string
	JWTSecret string
	AnonKey   string
	// AdminEmails получают роль admin при регистрации
	AdminEmails []string
	AccessTTL   time.Duration
	RefreshTTL  time.Duration
	RateLimit   int
	LogLevel    slog.Level
}

// LoadDotEnv loads variables from path into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// LoadClient reads client settings from env and, when configured, the policy file.
func LoadClient(env Getenv) (*Client, error) {
	if env == nil {
		env = os.Getenv
	}

	cfg := &Client{
		APIURL:        def(env("MARKETSYNC_API_URL"), "http://localhost:8080"),
		AnonKey:       def(env("MARKETSYNC_ANON_KEY"), "dev-anon-key"),
		DBPath:        def(env("MARKETSYNC_DB"), "marketsync-client.db"),
		SessionSecret: def(env("MARKETSYNC_SESSION_SECRET"), "dev-session-secret"),
		PolicyFile:    env("MARKETSYNC_POLICY_FILE"),
		HTTPTimeout:   duration(env("MARKETSYNC_HTTP_TIMEOUT"), 20*time.Second),
		SlowThreshold: duration(env("MARKETSYNC_SLOW_THRESHOLD"), 8*time.Second),
		LogLevel:      level(env("MARKETSYNC_LOG_LEVEL")),
		Policy:        DefaultPolicy(),
	}

	if cfg.PolicyFile != "" {
		policy, err := LoadPolicy(cfg.PolicyFile, cfg.Policy)
		if err != nil {
			return nil, err
		}
		cfg.Policy = policy
	}

	return cfg, nil
}

// LoadServer reads gateway settings from env.
func LoadServer(env Getenv) *Server {
	if env == nil {
		env = os.Getenv
	}

	return &Server{
		Addr:       def(env("MARKETSYNC_ADDR"), ":8080"),
		DBPath:     def(env("MARKETSYNC_SERVER_DB"), "marketsync-server.db"),
		JWTSecret:  def(env("MARKETSYNC_JWT_SECRET"), "dev-jwt-secret-change-me"),
		AnonKey:    def(env("MARKETSYNC_ANON_KEY"), "dev-anon-key"),
		AccessTTL:  duration(env("MARKETSYNC_ACCESS_TTL"), 15*time.Minute),
		RefreshTTL: duration(env("MARKETSYNC_REFRESH_TTL"), 30*24*time.Hour),
		RateLimit:  atoi(env("MARKETSYNC_RATE_LIMIT"), 300),
		LogLevel:   level(env("MARKETSYNC_LOG_LEVEL")),

		AdminEmails: list(env("MARKETSYNC_ADMIN_EMAILS")),
	}
}

func list(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.ToLower(strings.TrimSpace(part)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func def(v, d string) string {
	if strings.TrimSpace(v) == "" {
		return d
	}
	return strings.TrimSpace(v)
}

func atoi(s string, d int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return d
	}
	return n
}

func duration(s string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func level(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return l
}
