package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"student-dashboard/app/models"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/routes/views"
	"student-dashboard/app/session"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProfiles struct{}

func (stubProfiles) GetProfileByEmail(context.Context, string) (*models.Profile, error) {
	return nil, errors.New("not used")
}

type stubBuilder struct{}

func (stubBuilder) Build(_ context.Context, p models.Profile) (*models.Dashboard, error) {
	return &models.Dashboard{Role: p.Role}, nil
}

func newTestApp(t *testing.T, checks map[string]Check) *fiber.App {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := session.NewRedisStore(client, time.Hour)
	log := zap.NewNop()
	return New(Deps{
		Auth:       auth.NewHandler(stubProfiles{}, store, auth.Options{Secret: "server-secret"}, log),
		Dashboards: stubBuilder{},
		Log:        log,
		Checks:     checks,
	})
}

func TestHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	app := newTestApp(t, map[string]Check{"database": ok, "redis": ok})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	app = newTestApp(t, map[string]Check{"database": ok, "redis": down})
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body struct {
		Status string            `json:"status"`
		Checks map[string]string `json:"checks"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, "ok", body.Checks["database"])
	assert.Equal(t, "connection refused", body.Checks["redis"])
}

func TestSidebarToggle(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/ui/sidebar", nil)
	req.Header.Set("Referer", "/dashboard")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	var state string
	for _, c := range resp.Cookies() {
		if c.Name == views.SidebarCookie {
			state = c.Value
		}
	}
	assert.Equal(t, views.SidebarCollapsed, state)

	req = httptest.NewRequest(http.MethodPost, "/ui/sidebar", nil)
	req.AddCookie(&http.Cookie{Name: views.SidebarCookie, Value: views.SidebarCollapsed})
	resp, err = app.Test(req)
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == views.SidebarCookie {
			state = c.Value
		}
	}
	assert.Equal(t, views.SidebarOpen, state)
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/nothing", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	page, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(page), "Page Not Found")
}

func TestLandingAndDashboardWired(t *testing.T) {
	app := newTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	page, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(page), "Please sign in to access your dashboard.")
	assert.Contains(t, string(page), "Student Management System")
}
