package auth

import (
	"errors"
	"slices"
	"strings"
	"student-dashboard/app/models"
	"student-dashboard/app/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	localState   = "session_state"
	localSession = "session"
	localUser    = "user"
)

func tokenFrom(c *fiber.Ctx) string {
	if tokenString := c.Cookies(CookieName); tokenString != "" {
		return tokenString
	}
	if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// Resolve works out whether the request is signed in. A session store that
// cannot be reached leaves the request pending rather than signed out.
func (h *Handler) Resolve(c *fiber.Ctx) (session.State, *session.Session) {
	if state, ok := c.Locals(localState).(session.State); ok {
		sess, _ := c.Locals(localSession).(*session.Session)
		return state, sess
	}

	state, sess := h.resolve(c)
	c.Locals(localState, state)
	if sess != nil {
		c.Locals(localSession, sess)
		c.Locals(localUser, &sess.Profile)
	}
	return state, sess
}

func (h *Handler) resolve(c *fiber.Ctx) (session.State, *session.Session) {
	tokenString := tokenFrom(c)
	if tokenString == "" {
		return session.StateSignedOut, nil
	}

	claims, err := ValidateJWT(h.secret, tokenString)
	if err != nil {
		return session.StateSignedOut, nil
	}

	sess, err := h.sessions.Get(c.UserContext(), claims.SessionID)
	if errors.Is(err, session.ErrNotFound) {
		return session.StateSignedOut, nil
	}
	if err != nil {
		h.log.Warn("session lookup failed", zap.String("session_id", claims.SessionID), zap.Error(err))
		return session.StatePending, nil
	}
	if sess.Profile.ID != claims.UserID {
		return session.StateSignedOut, nil
	}

	sess.Profile.Role = models.ParseRole(string(sess.Profile.Role))
	return session.StateSignedIn, sess
}

// SessionMiddleware resolves the session for every request without
// rejecting anything.
func (h *Handler) SessionMiddleware(c *fiber.Ctx) error {
	h.Resolve(c)
	return c.Next()
}

// AuthMiddleware requires a signed-in session.
func (h *Handler) AuthMiddleware(c *fiber.Ctx) error {
	state, _ := h.Resolve(c)

	switch state {
	case session.StateSignedIn:
		return c.Next()
	case session.StatePending:
		if isAPIRequest(c) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Session store unavailable"})
		}
		return RenderLoading(c)
	default:
		if isAPIRequest(c) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not signed in"})
		}
		return c.Redirect(LoginPath)
	}
}

// RoleMiddleware checks the signed-in profile against allowed roles. It must
// run after AuthMiddleware.
func RoleMiddleware(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if profile := CurrentProfile(c); profile != nil && slices.Contains(allowed, profile.Role) {
			return c.Next()
		}

		if isAPIRequest(c) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Insufficient permissions"})
		}

		return c.Status(fiber.StatusForbidden).Render("error", fiber.Map{
			"Title":        "Access Forbidden - Student Management System",
			"ErrorCode":    "403",
			"ErrorTitle":   "Access Forbidden",
			"ErrorMessage": "You don't have permission to access this resource.",
		}, "")
	}
}

// CurrentProfile returns the signed-in profile, or nil.
func CurrentProfile(c *fiber.Ctx) *models.Profile {
	profile, _ := c.Locals(localUser).(*models.Profile)
	return profile
}

// RenderLoading shows the placeholder used while the session is pending. The
// page refreshes itself.
func RenderLoading(c *fiber.Ctx) error {
	return c.Render("loading", fiber.Map{
		"Title":      "Student Management System",
		"Message":    "Loading...",
		"RetryAfter": 2,
	}, "")
}
