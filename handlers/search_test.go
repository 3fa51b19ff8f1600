package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"car_rental_app_go/db"
	"car_rental_app_go/models"
	"car_rental_app_go/services/searchsync"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formHeaders = map[string]string{echo.HeaderContentType: echo.MIMEApplicationForm}
var jsonHeaders = map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON}

func searchForm(from, to string) *strings.Reader {
	return strings.NewReader(url.Values{"from": {from}, "to": {to}}.Encode())
}

func countEntries(t *testing.T, visitorID string) int64 {
	var count int64
	require.NoError(t, db.DB.Model(&models.SearchEntry{}).Where("visitor_id = ?", visitorID).Count(&count).Error)
	return count
}

func TestSearchSubmitHandler(t *testing.T) {
	t.Run("PersistsAndRedirectsToResults", func(t *testing.T) {
		e, hub := setupServer(t)
		cookie := newVisitor(t, e)

		rec := doRequest(e, http.MethodPost, "/search", searchForm("2024-01-01", "2024-01-03"), cookie, formHeaders)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#vehicles", rec.Header().Get(echo.HeaderLocation))

		p := hub.Service(cookie.Value).Persisted()
		assert.Equal(t, "2024-01-01", p.FromDate)
		assert.Equal(t, "2024-01-03", p.ToDate)
		assert.Equal(t, "2", p.RentalDays)
		assert.Equal(t, int64(3), countEntries(t, cookie.Value))
	})

	t.Run("SameDayIsZeroDays", func(t *testing.T) {
		e, hub := setupServer(t)
		cookie := newVisitor(t, e)

		doRequest(e, http.MethodPost, "/search", searchForm("2024-03-10", "2024-03-10"), cookie, formHeaders)

		assert.Equal(t, "0", hub.Service(cookie.Value).Persisted().RentalDays)
	})

	t.Run("MissingDateStillScrolls", func(t *testing.T) {
		e, hub := setupServer(t)
		cookie := newVisitor(t, e)

		var notified int
		unsubscribe := hub.Service(cookie.Value).Subscribe(func(searchsync.Message) { notified++ })
		defer unsubscribe()

		rec := doRequest(e, http.MethodPost, "/search", searchForm("2024-01-01", ""), cookie, formHeaders)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#vehicles", rec.Header().Get(echo.HeaderLocation))
		assert.Equal(t, int64(0), countEntries(t, cookie.Value))
		assert.Zero(t, notified)
	})

	t.Run("ReversedRangeIsRejected", func(t *testing.T) {
		e, _ := setupServer(t)
		cookie := newVisitor(t, e)

		rec := doRequest(e, http.MethodPost, "/search", searchForm("2024-01-05", "2024-01-01"), cookie, formHeaders)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, int64(0), countEntries(t, cookie.Value))
	})

	t.Run("HTMXGetsLocationHeader", func(t *testing.T) {
		e, _ := setupServer(t)
		cookie := newVisitor(t, e)

		headers := map[string]string{
			echo.HeaderContentType: echo.MIMEApplicationForm,
			"HX-Request":           "true",
		}
		rec := doRequest(e, http.MethodPost, "/search", searchForm("2024-01-01", "2024-01-02"), cookie, headers)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "/#vehicles", rec.Header().Get("HX-Location"))
	})
}

func TestSearchAPI(t *testing.T) {
	t.Run("GetEmpty", func(t *testing.T) {
		e, _ := setupServer(t)
		cookie := newVisitor(t, e)

		rec := doRequest(e, http.MethodGet, "/api/search", nil, cookie, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, map[string]string{"fromDate": "", "toDate": "", "rentalDays": ""}, body)
	})

	t.Run("PutThenGet", func(t *testing.T) {
		e, hub := setupServer(t)
		cookie := newVisitor(t, e)

		var received []searchsync.Message
		unsubscribe := hub.Service(cookie.Value).Subscribe(func(msg searchsync.Message) {
			received = append(received, msg)
		})
		defer unsubscribe()

		rec := doRequest(e, http.MethodPut, "/api/search", strings.NewReader(`{"from":"2024-02-01","to":"2024-02-08"}`), cookie, jsonHeaders)
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, received, 1)
		assert.Equal(t, searchsync.DateRange{From: "2024-02-01", To: "2024-02-08"}, received[0].Range)

		rec = doRequest(e, http.MethodGet, "/api/search", nil, cookie, nil)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "2024-02-01", body["fromDate"])
		assert.Equal(t, "2024-02-08", body["toDate"])
		assert.Equal(t, "7", body["rentalDays"])
	})

	t.Run("PutInvalid", func(t *testing.T) {
		e, _ := setupServer(t)
		cookie := newVisitor(t, e)

		tests := []struct {
			name string
			body string
		}{
			{"Empty", `{"from":"","to":""}`},
			{"Partial", `{"from":"2024-02-01","to":""}`},
			{"Malformed", `{"from":"2024-02-31","to":"2024-03-01"}`},
			{"Reversed", `{"from":"2024-02-08","to":"2024-02-01"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doRequest(e, http.MethodPut, "/api/search", strings.NewReader(tt.body), cookie, jsonHeaders)
				assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			})
		}
		assert.Equal(t, int64(0), countEntries(t, cookie.Value))
	})

	t.Run("PutBadJSON", func(t *testing.T) {
		e, _ := setupServer(t)
		cookie := newVisitor(t, e)

		rec := doRequest(e, http.MethodPut, "/api/search", strings.NewReader(`{`), cookie, jsonHeaders)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
