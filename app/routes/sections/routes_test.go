package sections

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"student-dashboard/app/models"
	"student-dashboard/app/navigation"
	"student-dashboard/app/routes/auth"
	"student-dashboard/app/session"
	"student-dashboard/app/templates"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const secret = "sections-secret"

type noProfiles struct{}

func (noProfiles) GetProfileByEmail(context.Context, string) (*models.Profile, error) {
	return nil, errors.New("not used")
}

type fixture struct {
	app    *fiber.App
	tokens map[models.Role]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := session.NewRedisStore(client, time.Hour)

	app := fiber.New(fiber.Config{
		Views:       templates.NewEngine(false),
		ViewsLayout: "layouts/main",
	})
	SetupSectionRoutes(app, auth.NewHandler(noProfiles{}, store, auth.Options{Secret: secret}, zap.NewNop()))

	tokens := map[models.Role]string{}
	for _, role := range models.Roles {
		sess, err := store.Create(context.Background(), models.Profile{
			ID:    "u-" + string(role),
			Name:  role.Title() + " User",
			Email: string(role) + "@example.com",
			Role:  role,
		})
		require.NoError(t, err)
		token, err := auth.GenerateJWT([]byte(secret), sess)
		require.NoError(t, err)
		tokens[role] = token
	}
	return &fixture{app: app, tokens: tokens}
}

func (f *fixture) get(t *testing.T, path string, role models.Role) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token, ok := f.tokens[role]; ok {
		req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	}
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestSectionAccessFollowsMenus(t *testing.T) {
	f := newFixture(t)

	for _, url := range navigation.Destinations() {
		allowed := navigation.RolesFor(url)
		for _, role := range models.Roles {
			resp := f.get(t, url, role)
			if slices.Contains(allowed, role) {
				assert.Equal(t, http.StatusOK, resp.StatusCode, "%s as %s", url, role)
			} else {
				assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s as %s", url, role)
			}
		}
	}
}

func TestSectionRequiresSignIn(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/my-marks", models.RoleNone)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, auth.LoginPath, resp.Header.Get("Location"))
}

func TestSectionHighlightsCurrentItem(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/my-marks", models.RoleStudent)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)

	assert.Contains(t, string(body), `<a href="/my-marks" class="active"`)
	assert.Contains(t, string(body), "Student Panel")
	assert.Contains(t, string(body), "Your marks and scores.")
}

func TestProfileSection(t *testing.T) {
	f := newFixture(t)

	resp := f.get(t, "/profile", models.RoleTeacher)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "teacher@example.com")
	assert.Contains(t, string(body), "Teacher User")
}

func TestReportSectionLinksExport(t *testing.T) {
	f := newFixture(t)

	for role, url := range map[models.Role]string{models.RoleAdmin: "/reports", models.RoleTeacher: "/teacher-reports"} {
		resp := f.get(t, url, role)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Contains(t, string(body), `href="/api/dashboard/report.xlsx"`)
	}
}
