package handlers

import (
	"net/http"
	"testing"

	"car_rental_app_go/middleware"
	"car_rental_app_go/services/searchsync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeHandler(t *testing.T) {
	t.Run("FirstVisitIssuesCookie", func(t *testing.T) {
		e, _ := setupServer(t)

		rec := doRequest(e, http.MethodGet, "/", nil, nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

		var found bool
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == middleware.VisitorCookieName {
				found = true
			}
		}
		assert.True(t, found)

		body := rec.Body.String()
		assert.Contains(t, body, `id="hero"`)
		assert.Contains(t, body, `id="vehicles"`)
		assert.Contains(t, body, `min="2026-10-19"`)
		assert.Contains(t, body, "© 2026")
	})

	t.Run("RestoresLastSearch", func(t *testing.T) {
		e, hub := setupServer(t)
		cookie := newVisitor(t, e)
		require.NoError(t, hub.Service(cookie.Value).Set(searchsync.DateRange{From: "2026-11-01", To: "2026-11-04"}))

		rec := doRequest(e, http.MethodGet, "/", nil, cookie, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, `value="2026-11-01"`)
		assert.Contains(t, body, `value="2026-11-04"`)
		// Return date cannot precede the restored pick-up date
		assert.Contains(t, body, `min="2026-11-01"`)
		assert.Contains(t, body, "3 days")
	})

	t.Run("ReleasesSubscriptions", func(t *testing.T) {
		e, hub := setupServer(t)
		cookie := newVisitor(t, e)

		doRequest(e, http.MethodGet, "/", nil, cookie, nil)
		assert.Zero(t, hub.Subscribers(cookie.Value))
	})

	t.Run("FiltersByCategory", func(t *testing.T) {
		e, _ := setupServer(t)
		cookie := newVisitor(t, e)

		rec := doRequest(e, http.MethodGet, "/?category=van", nil, cookie, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Vito")
		assert.NotContains(t, rec.Body.String(), "Corolla")
	})

	t.Run("UnknownCategoryShowsAll", func(t *testing.T) {
		e, _ := setupServer(t)
		cookie := newVisitor(t, e)

		rec := doRequest(e, http.MethodGet, "/?category=spaceship", nil, cookie, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Vito")
		assert.Contains(t, rec.Body.String(), "Corolla")
	})
}
