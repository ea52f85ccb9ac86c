package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/instaclone/internal/view"
	"github.com/nfrund/instaclone/internal/view/dto/auth"
	"github.com/nfrund/instaclone/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet renders the feed placeholder. Routing guarantees a session.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	data := auth.HomeData{
		CSRFToken: csrfToken(c),
		Flashes:   view.GetFlashData(c),
	}
	return c.Render(http.StatusOK, "", pages.HomePage(data))
}
