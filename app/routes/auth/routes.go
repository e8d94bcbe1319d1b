// Package auth signs users in and out and resolves the session attached to
// each request.
package auth

import (
	"context"
	"student-dashboard/app/models"
	"student-dashboard/app/session"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	CookieName = "jwt_token"
	LoginPath  = "/auth/login"
)

// ProfileFinder looks up the account behind a sign-in attempt.
type ProfileFinder interface {
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
}

type Options struct {
	Secret        string
	SecureCookies bool
}

type Handler struct {
	profiles ProfileFinder
	sessions session.Store
	secret   []byte
	secure   bool
	validate *validator.Validate
	log      *zap.Logger
}

func NewHandler(profiles ProfileFinder, sessions session.Store, opts Options, log *zap.Logger) *Handler {
	return &Handler{
		profiles: profiles,
		sessions: sessions,
		secret:   []byte(opts.Secret),
		secure:   opts.SecureCookies,
		validate: validator.New(),
		log:      log.Named("auth"),
	}
}

func SetupAuthRoutes(app *fiber.App, h *Handler) {
	auth := app.Group("/auth")

	auth.Get("/login", h.ShowLoginPage)
	auth.Post("/login", h.LoginAPI)
	auth.Post("/logout", h.LogoutAPI)
}

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if state, _ := h.Resolve(c); state == session.StateSignedIn {
		return c.Redirect("/dashboard")
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Sign In - Student Management System",
	}, "")
}
