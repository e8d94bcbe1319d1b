package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"student-dashboard/app/models"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/services"
	"student-dashboard/app/session"
	"student-dashboard/app/templates"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

type fakeBuilder struct {
	stats    models.AdminStats
	err      error
	degraded bool
	calls    int
}

func (f *fakeBuilder) Build(_ context.Context, p models.Profile) (*models.Dashboard, error) {
	f.calls++
	if f.err != nil && !f.degraded {
		return nil, f.err
	}
	return &models.Dashboard{
		Role:     p.Role,
		Stats:    f.stats,
		Cards:    services.AdminCards(f.stats),
		Degraded: f.degraded,
	}, f.err
}

type unreachableSessions struct{}

func (unreachableSessions) Create(context.Context, models.Profile) (*session.Session, error) {
	return nil, errors.New("connection refused")
}

func (unreachableSessions) Get(context.Context, string) (*session.Session, error) {
	return nil, errors.New("connection refused")
}

func (unreachableSessions) Delete(context.Context, string) error { return nil }

type noProfiles struct{}

func (noProfiles) GetProfileByEmail(context.Context, string) (*models.Profile, error) {
	return nil, errors.New("not used")
}

type fixture struct {
	app     *fiber.App
	store   session.Store
	builder *fakeBuilder
}

func newFixture(t *testing.T, store session.Store) *fixture {
	t.Helper()
	if store == nil {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		store = session.NewRedisStore(client, time.Hour)
	}

	authHandler := auth.NewHandler(noProfiles{}, store, auth.Options{Secret: testSecret}, zap.NewNop())
	builder := &fakeBuilder{stats: models.AdminStats{
		TotalUsers: 10, TotalStudents: 6, TotalTeachers: 3,
		TotalCourses: 4, TotalAttendance: 20, AvgAttendance: 75,
	}}

	h := NewHandler(authHandler, builder, zap.NewNop())
	h.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

	app := fiber.New(fiber.Config{
		Views:       templates.NewEngine(false),
		ViewsLayout: "layouts/main",
	})
	SetupDashboardRoutes(app, h)

	return &fixture{app: app, store: store, builder: builder}
}

func (f *fixture) get(t *testing.T, path string, p *models.Profile) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if p != nil {
		sess, err := f.store.Create(context.Background(), *p)
		require.NoError(t, err)
		token, err := auth.GenerateJWT([]byte(testSecret), sess)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

var admin = &models.Profile{ID: "u-admin", Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin}

func TestDashboardSignedOut(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/dashboard", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Please sign in to access your dashboard.")
	assert.Zero(t, f.builder.calls)
}

func TestDashboardPending(t *testing.T) {
	f := newFixture(t, unreachableSessions{})

	sess := &session.Session{ID: "s1", Profile: *admin, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
	token, err := auth.GenerateJWT([]byte(testSecret), sess)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	resp, err := f.app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "2", resp.Header.Get("Refresh"))
	assert.Contains(t, readBody(t, resp), "Loading dashboard...")
	assert.Zero(t, f.builder.calls)
}

func TestDashboardNoRole(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/dashboard", &models.Profile{ID: "u-none", Name: "Nia"})
	body := readBody(t, resp)
	assert.Contains(t, body, "Welcome back, Nia!")
	assert.Contains(t, body, "No role has been assigned to your account.")
	assert.Zero(t, f.builder.calls)
}

func TestDashboardAdmin(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/dashboard", admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)

	assert.Contains(t, body, "Welcome back, Ada!")
	assert.Contains(t, body, "Admin Dashboard")
	assert.Contains(t, body, "Total Users")
	assert.Contains(t, body, "6 Students, 3 Teachers")
	assert.Contains(t, body, "75% average attendance")
	assert.Contains(t, body, "Admin Panel")
	assert.NotContains(t, body, "could not be loaded")
	assert.Equal(t, 1, f.builder.calls)
}

func TestDashboardDegraded(t *testing.T) {
	f := newFixture(t, nil)
	f.builder.stats = models.AdminStats{}
	f.builder.err = errors.New("query profiles: timeout")
	f.builder.degraded = true

	resp := f.get(t, "/dashboard", admin)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Some statistics could not be loaded")
	assert.Contains(t, body, "0 Students, 0 Teachers")
}

func TestDashboardStatsAPI(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/api/dashboard/stats", admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Role  string            `json:"role"`
			Stats models.AdminStats `json:"stats"`
			Cards []models.Card     `json:"cards"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "admin", body.Data.Role)
	assert.Equal(t, 10, body.Data.Stats.TotalUsers)
	require.Len(t, body.Data.Cards, 4)
	assert.Equal(t, "Total Users", body.Data.Cards[0].Title)
}

func TestDashboardStatsAPIErrors(t *testing.T) {
	t.Run("signed out", func(t *testing.T) {
		f := newFixture(t, nil)
		resp := f.get(t, "/api/dashboard/stats", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("no role", func(t *testing.T) {
		f := newFixture(t, nil)
		resp := f.get(t, "/api/dashboard/stats", &models.Profile{ID: "u-none", Name: "Nia"})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Zero(t, f.builder.calls)
	})

	t.Run("fetch failure", func(t *testing.T) {
		f := newFixture(t, nil)
		f.builder.err = errors.New("query courses: connection reset")
		f.builder.degraded = true

		resp := f.get(t, "/api/dashboard/stats", admin)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Failed to fetch dashboard statistics", body["error"])
		assert.Contains(t, body["details"], "connection reset")
	})
}

func TestDashboardReportAPI(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/api/dashboard/report.xlsx", admin)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, xlsxContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "dashboard-admin-2024-03-01.xlsx")

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	title, err := wb.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Student Management System Report", title)

	rows, err := wb.GetRows("Summary")
	require.NoError(t, err)
	assert.Contains(t, rows[5], "Total Users")
}
