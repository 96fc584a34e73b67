package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/marketsync/internal/client/app"
	"github.com/iudanet/marketsync/internal/client/auth"
	"github.com/iudanet/marketsync/internal/client/iocli"
	"github.com/iudanet/marketsync/internal/config"
	"github.com/iudanet/marketsync/internal/models"
	"github.com/iudanet/marketsync/pkg/api"
)

// fakeGateway отвечает на анонимные вызовы каталога, health и maintenance
type fakeGateway struct {
	products    []models.Product
	maintenance models.Maintenance
	mu          sync.Mutex
}

func (g *fakeGateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	path := strings.TrimPrefix(r.URL.Path, "/functions/v1")
	switch {
	case r.Method == http.MethodGet && path == "/products":
		_ = json.NewEncoder(w).Encode(api.OK(g.products))
	case r.Method == http.MethodGet && path == "/health":
		_ = json.NewEncoder(w).Encode(api.OK(api.HealthResponse{Status: "ok"}))
	case r.Method == http.MethodGet && path == "/maintenance":
		_ = json.NewEncoder(w).Encode(api.OK(g.maintenance))
	default:
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.Fail("authentication required"))
	}
}

func newTestCli(t *testing.T, gw *fakeGateway) (*Cli, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(gw)
	t.Cleanup(srv.Close)

	cfg, err := config.LoadClient(func(string) string { return "" })
	require.NoError(t, err)
	cfg.APIURL = srv.URL
	cfg.DBPath = filepath.Join(t.TempDir(), "client.db")

	a, err := app.New(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	out := &bytes.Buffer{}
	return New(a, iocli.NewStdioFrom(strings.NewReader(""), out), "test"), out
}

func run(t *testing.T, c *Cli, args ...string) error {
	t.Helper()
	c.SetArgs(args)
	return c.Execute(context.Background())
}

func TestProducts_ListsCatalog(t *testing.T) {
	gw := &fakeGateway{
		products: []models.Product{
			{ID: "p1", Name: "Mug", Category: "kitchen", Price: 1250, Stock: 3},
			{ID: "p2", Name: "Shirt", Category: "apparel", Price: 1999, Stock: 0},
		},
	}
	c, out := newTestCli(t, gw)

	require.NoError(t, run(t, c, "products"))

	assert.Contains(t, out.String(), "Mug")
	assert.Contains(t, out.String(), "12.50")
	assert.Contains(t, out.String(), "3 in stock")
	assert.Contains(t, out.String(), "out of stock")
}

func TestProducts_FilterByCategory(t *testing.T) {
	gw := &fakeGateway{
		products: []models.Product{
			{ID: "p1", Name: "Mug", Category: "kitchen", Price: 1250, Stock: 3},
			{ID: "p2", Name: "Shirt", Category: "apparel", Price: 1999, Stock: 1},
		},
	}
	c, out := newTestCli(t, gw)

	require.NoError(t, run(t, c, "products", "--category", "apparel"))

	assert.Contains(t, out.String(), "Shirt")
	assert.NotContains(t, out.String(), "Mug")
}

func TestMaintenanceStatus_Active(t *testing.T) {
	gw := &fakeGateway{maintenance: models.Maintenance{Mode: models.MaintenanceImmediate, Message: "Back soon"}}
	c, out := newTestCli(t, gw)

	require.NoError(t, run(t, c, "maintenance", "status"))

	assert.Contains(t, out.String(), "State: active")
	assert.Contains(t, out.String(), "Message: Back soon")
}

func TestCommands_RequireLogin(t *testing.T) {
	for _, args := range [][]string{
		{"cart", "list"},
		{"orders"},
		{"refund", "list"},
		{"chat", "list"},
		{"notifications"},
	} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			c, _ := newTestCli(t, &fakeGateway{})

			err := run(t, c, args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
		})
	}
}

func TestAdminCommands_RequireLogin(t *testing.T) {
	c, _ := newTestCli(t, &fakeGateway{})

	err := run(t, c, "maintenance", "on")
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestSync_Anonymous(t *testing.T) {
	gw := &fakeGateway{products: []models.Product{{ID: "p1", Name: "Mug", Price: 100, Stock: 1}}}
	c, out := newTestCli(t, gw)

	require.NoError(t, run(t, c, "sync"))
	assert.Contains(t, out.String(), "Synchronized")

	at, err := c.app.LastSync(context.Background(), app.DomainProducts)
	require.NoError(t, err)
	assert.False(t, at.IsZero())
}

func TestStatus_NotLoggedIn(t *testing.T) {
	c, out := newTestCli(t, &fakeGateway{})

	require.NoError(t, run(t, c, "status"))

	assert.Contains(t, out.String(), "Session: not logged in")
	assert.Contains(t, out.String(), "Server: online")
	assert.Contains(t, out.String(), "Maintenance: normal")
	assert.Contains(t, out.String(), "never")
}

func TestParseMoney(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12", want: 1200},
		{in: "12.5", want: 1250},
		{in: "12.50", want: 1250},
		{in: "0.05", want: 5},
		{in: "12.", wantErr: true},
		{in: "12.345", wantErr: true},
		{in: "-1", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseMoney(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
