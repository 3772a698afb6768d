package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/talmyra/website/pkg/content"
)

// SiteNavbar renders the fixed top navigation. Section links point at the
// landing page so they also work from the webinar page.
func SiteNavbar(siteName string) g.Node {
	links := content.NavLinks()

	return Header(
		Class("navbar"),
		Div(
			Class("container navbar-inner"),
			A(Href("/"), Logo(siteName)),

			Nav(
				Class("navbar-links"),
				g.Attr("aria-label", "Main"),
				g.Group(g.Map(links, func(l content.NavLink) g.Node {
					return A(Href("/#"+l.Anchor), Class("nav-link"), g.Text(l.Label))
				})),
				A(Href("/webinar"), Class("nav-link"), g.Text("Webinar")),
			),

			A(Href("/#contact"), Class("btn btn-primary btn-sm"), g.Text("Get Demo")),

			// CSS-only mobile menu.
			Input(ID("nav-toggle"), Type("checkbox"), Class("nav-toggle")),
			Label(
				g.Attr("for", "nav-toggle"),
				Class("nav-toggle-label"),
				g.Attr("aria-label", "Toggle menu"),
				Icon("menu", ""),
			),
			Nav(
				Class("navbar-mobile"),
				g.Attr("aria-label", "Mobile"),
				g.Group(g.Map(links, func(l content.NavLink) g.Node {
					return A(Href("/#"+l.Anchor), g.Text(l.Label))
				})),
				A(Href("/webinar"), g.Text("Webinar")),
				A(Href("/#contact"), Class("btn btn-primary"), g.Text("Get Demo")),
			),
		),
	)
}
