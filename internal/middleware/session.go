package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"weathertrack/internal/auth"
	"weathertrack/internal/errors"
)

const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "session_token"
	// SessionHeaderName lets non-browser clients echo the token instead.
	SessionHeaderName = "X-Session-Token"

	userIDKey = "user_id"
)

// TokenFromRequest extracts the session token from the cookie or header.
// Returns "" when neither is present.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return c.Request().Header.Get(SessionHeaderName)
}

// UserID returns the caller's resolved user id, if any.
func UserID(c echo.Context) (uint, bool) {
	uid, ok := c.Get(userIDKey).(uint)
	return uid, ok
}

// ResolveSession resolves the caller's identity once per request, before any
// handler logic, and stores it in the context. It runs on every route,
// including public ones, and never rejects a request itself: an absent,
// unknown, or expired token simply leaves the caller anonymous.
func ResolveSession(store auth.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token != "" {
				if uid, err := store.Resolve(c.Request().Context(), token); err == nil {
					c.Set(userIDKey, uid)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth guards protected routes. It rejects with 401 exactly when
// ResolveSession produced no identity for the request.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := UserID(c); !ok {
			return c.JSON(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "Authentication required",
				Code:  "AUTHENTICATION_REQUIRED",
			})
		}
		return next(c)
	}
}
