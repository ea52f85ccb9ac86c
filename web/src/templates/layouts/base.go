package layouts

import (
	"fmt"

	"github.com/nfrund/instaclone/internal/view"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps page content in the HTML document shell. The CSRF token is sent
// with every htmx request through hx-headers.
func Base(title, csrfToken string, flashes view.FlashData, content g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				PageTitle(title),
				h.Link(h.Rel("stylesheet"), h.Href("/static/app.css")),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(
				g.If(csrfToken != "", g.Attr("hx-headers", fmt.Sprintf(`{"X-CSRF-Token": %q}`, csrfToken))),
				Flashes(flashes),
				content,
			),
		),
	)
}

// Flashes renders the success and error flash messages, if any.
func Flashes(flashes view.FlashData) g.Node {
	if flashes.IsEmpty() {
		return nil
	}
	return h.Div(
		h.Class("flashes"),
		g.Map(flashes.Success, func(msg string) g.Node {
			return h.P(h.Class("flash flash-success"), g.Text(msg))
		}),
		g.Map(flashes.Error, func(msg string) g.Node {
			return h.P(h.Class("flash flash-error"), g.Text(msg))
		}),
	)
}
