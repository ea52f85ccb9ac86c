package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/domain"
	"github.com/nfrund/instaclone/internal/loginform"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoginRecorder(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues(domain.LoginTimedOut))

	LoginRecorder{}.LoginResolved(context.Background(), "alice1", loginform.Outcome{Kind: domain.LoginTimedOut})

	after := testutil.ToFloat64(LoginAttempts.WithLabelValues(domain.LoginTimedOut))
	assert.Equal(t, before+1, after)
}

func TestSetLoginFormsActive(t *testing.T) {
	store := loginform.NewStore(time.Minute, loginform.WithSizeReporter(SetLoginFormsActive))

	id, _ := store.Mount(domain.NavigationState{})
	store.Mount(domain.NavigationState{})
	assert.Equal(t, 2.0, testutil.ToFloat64(LoginFormsActive))

	store.Discard(id)
	assert.Equal(t, 1.0, testutil.ToFloat64(LoginFormsActive))
}

func TestMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(Middleware)
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "no") })

	okBefore := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200"))
	teapotBefore := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "418"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")))
	assert.Equal(t, teapotBefore+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/boom", "418")))
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestHandler(t *testing.T) {
	LoginAttempts.WithLabelValues(domain.LoginSucceeded).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, MetricsPath, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "instaclone_login_attempts_total")
}
