package middleware

import (
	"net/http"
	"time"

	"car_rental_app_go/config"
	"car_rental_app_go/db"
	"car_rental_app_go/logger"
	"car_rental_app_go/services"

	"github.com/labstack/echo/v4"
)

const (
	// VisitorCookieName is the name of the anonymous visitor cookie
	VisitorCookieName = "car_rental_visitor"
	// ContextKeyVisitorID is the context key for the visitor id
	ContextKeyVisitorID = "visitor_id"
	// VisitorCookieMaxAge keeps the cookie for a year
	VisitorCookieMaxAge = 365 * 24 * time.Hour
)

// Visitor identifies the browser by its visitor cookie, issuing a new one when
// missing or unknown. Saved searches are scoped to this id.
func Visitor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var cookieValue string
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				cookieValue = cookie.Value
			}

			visitor, created, err := services.ResolveVisitor(db.DB, cookieValue, c.Request().UserAgent())
			if err != nil {
				logger.WithError(err).Error("Failed to resolve visitor")
				return echo.NewHTTPError(http.StatusInternalServerError, "Could not start your session")
			}

			if created {
				setVisitorCookie(c, visitor.ID)
			}

			c.Set(ContextKeyVisitorID, visitor.ID)
			return next(c)
		}
	}
}

// GetVisitorID retrieves the visitor id from context
func GetVisitorID(c echo.Context) string {
	id, ok := c.Get(ContextKeyVisitorID).(string)
	if !ok {
		return ""
	}
	return id
}

func setVisitorCookie(c echo.Context, visitorID string) {
	var secure bool
	if cfg, ok := c.Get("config").(*config.Config); ok {
		secure = cfg.SecureCookies
	}

	c.SetCookie(&http.Cookie{
		Name:     VisitorCookieName,
		Value:    visitorID,
		Path:     "/",
		MaxAge:   int(VisitorCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
