package pages

import (
	"github.com/nfrund/instaclone/internal/view/dto/auth"
	"github.com/nfrund/instaclone/web/src/templates/components"
	"github.com/nfrund/instaclone/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// HomeTitle is the document title of the feed.
const HomeTitle = "Home"

// HomePage is the feed placeholder shown to logged-in users.
func HomePage(data auth.HomeData) g.Node {
	return layouts.Base(HomeTitle, data.CSRFToken, data.Flashes,
		h.Main(
			h.Class("feed"),
			h.H1(g.Text("Welcome to Instaclone")),
			h.P(g.Text("Your feed is empty.")),
			h.Form(
				h.Method("post"),
				h.Action(LogoutPath),
				components.CSRFInput(data.CSRFToken),
				h.Button(h.Type("submit"), h.Class("logout"), g.Text("Log out")),
			),
		),
	)
}
