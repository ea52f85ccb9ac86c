package layouts

import (
	"fmt"

	"github.com/nfrund/instaclone/internal/domain"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// AppName is appended to every page title.
const AppName = "Instaclone"

// FormatTitle returns "<title> | Instaclone". An empty title is a setup
// fault and is reported as domain.ErrMissingTitle.
func FormatTitle(title string) (string, error) {
	if title == "" {
		return "", domain.ErrMissingTitle
	}
	return fmt.Sprintf("%s | %s", title, AppName), nil
}

// PageTitle declares the document title. Every page must pass a title;
// an empty one panics because it can only come from a programming mistake.
func PageTitle(title string) g.Node {
	full, err := FormatTitle(title)
	if err != nil {
		panic(err)
	}
	return h.TitleEl(g.Text(full))
}
