package auth

import (
	"errors"
	"strings"
	"student-dashboard/app/database"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginAPI accepts JSON or a form post. Form posts get the login page back
// on failure and a redirect to the dashboard on success.
func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	isJSON := c.Is("json")

	fail := func(status int, message string, email string) error {
		if isJSON {
			return c.Status(status).JSON(fiber.Map{"error": message})
		}
		return c.Status(status).Render("auth/login", fiber.Map{
			"Title": "Sign In - Student Management System",
			"Error": message,
			"Email": email,
		}, "")
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(fiber.StatusBadRequest, "Invalid request", "")
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := h.validate.Struct(req); err != nil {
		return fail(fiber.StatusBadRequest, "Enter a valid email and password", req.Email)
	}

	ctx := c.UserContext()
	profile, err := h.profiles.GetProfileByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, database.ErrProfileNotFound) {
			return fail(fiber.StatusUnauthorized, "Invalid credentials", req.Email)
		}
		h.log.Error("profile lookup failed", zap.Error(err))
		return fail(fiber.StatusInternalServerError, "Database error", req.Email)
	}

	if !CheckPasswordHash(req.Password, profile.PasswordHash) {
		return fail(fiber.StatusUnauthorized, "Invalid credentials", req.Email)
	}

	sess, err := h.sessions.Create(ctx, *profile)
	if err != nil {
		h.log.Error("create session failed", zap.String("user_id", profile.ID), zap.Error(err))
		return fail(fiber.StatusInternalServerError, "Failed to start session", req.Email)
	}

	token, err := GenerateJWT(h.secret, sess)
	if err != nil {
		h.log.Error("sign token failed", zap.Error(err))
		return fail(fiber.StatusInternalServerError, "Failed to generate token", req.Email)
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  sessionExpiry(sess),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: "Lax",
	})

	h.log.Info("signed in", zap.String("user_id", profile.ID), zap.String("role", string(profile.Role)))

	if !isJSON {
		return c.Redirect("/dashboard")
	}
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    sess.Profile,
	})
}

// LogoutAPI removes the session record, clears the cookie and returns the
// browser to the landing page.
func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	if tokenString := tokenFrom(c); tokenString != "" {
		if claims, err := ValidateJWT(h.secret, tokenString); err == nil {
			if err := h.sessions.Delete(c.UserContext(), claims.SessionID); err != nil {
				h.log.Warn("delete session failed", zap.String("session_id", claims.SessionID), zap.Error(err))
			}
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: "Lax",
	})

	return c.Redirect("/")
}
