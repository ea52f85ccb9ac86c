package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func setupTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	sessionMiddleware := session.Middleware(store)

	// Run a dummy handler through the middleware so the session store is
	// installed on the context.
	var c echo.Context
	handler := func(ctx echo.Context) error { c = ctx; return nil }
	_ = sessionMiddleware(handler)(e.NewContext(req, rec))

	return c, rec
}

func TestFlashMessages(t *testing.T) {
	t.Run("Set and Get Success Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "It worked!")

		flashes := view.GetFlashData(c)
		require.NotEmpty(t, flashes.Success)
		assert.Equal(t, "It worked!", flashes.Success[0])
		assert.Empty(t, flashes.Error)

		flashesAfterRead := view.GetFlashData(c)
		assert.Empty(t, flashesAfterRead.Success, "Flashes should be cleared after being read")
	})

	t.Run("Set and Get Error Flash", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashError(c, "It failed!")

		flashes := view.GetFlashData(c)
		require.NotEmpty(t, flashes.Error)
		assert.Equal(t, "It failed!", flashes.Error[0])
		assert.Empty(t, flashes.Success)
	})

	t.Run("GetFlashData with no flashes set", func(t *testing.T) {
		c, _ := setupTestContext()

		flashes := view.GetFlashData(c)
		assert.True(t, flashes.IsEmpty())
	})
}

func TestHandOffForm(t *testing.T) {
	t.Run("is taken by the first read", func(t *testing.T) {
		c, _ := setupTestContext()

		require.NoError(t, view.HandOffForm(c, "form-123"))

		assert.Equal(t, "form-123", view.TakeHandedOffForm(c))
		assert.Empty(t, view.TakeHandedOffForm(c))
	})

	t.Run("nothing handed off", func(t *testing.T) {
		c, _ := setupTestContext()

		assert.Empty(t, view.TakeHandedOffForm(c))
	})

	t.Run("does not disturb other flashes", func(t *testing.T) {
		c, _ := setupTestContext()

		view.SetFlashSuccess(c, "You have been logged out.")
		require.NoError(t, view.HandOffForm(c, "form-123"))

		assert.Equal(t, "form-123", view.TakeHandedOffForm(c))
		assert.Equal(t, []string{"You have been logged out."}, view.GetFlashData(c).Success)
	})
}
