package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/mockmind/mockmind-api/pkg/token"
)

const (
	// SessionIDContextKey is the echo context key for the authorized session
	SessionIDContextKey = "session_id"
)

// SessionAuth returns an Echo middleware that validates the session token and
// checks it grants access to the session named in the :id path parameter.
func SessionAuth(manager *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tok := extractToken(c)
			if tok == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing session token")
			}

			sessionID, err := manager.ValidateSessionToken(tok)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired session token")
			}

			if param := c.Param("id"); param != "" {
				requested, err := uuid.Parse(param)
				if err != nil {
					return echo.NewHTTPError(http.StatusBadRequest, "Invalid session ID")
				}
				if requested != sessionID {
					return echo.NewHTTPError(http.StatusForbidden, "Token does not grant access to this session")
				}
			}

			c.Set(SessionIDContextKey, sessionID)
			return next(c)
		}
	}
}

// GetSessionID retrieves the authorized session ID from the echo context
func GetSessionID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(SessionIDContextKey).(uuid.UUID)
	return id, ok
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// try cookie
	if cookie, err := c.Cookie("session_token"); err == nil {
		return cookie.Value
	}
	return ""
}
