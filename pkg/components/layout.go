package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	SiteName    string
	SiteURL     string
	Path        string
	Title       string
	Description string
	OGImage     string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.SiteName == "" {
		config.SiteName = "Talmyra"
	}

	if config.Title == "" {
		config.Title = config.SiteName + " - Hire Smarter, Hire Faster"
	}

	if config.Description == "" {
		config.Description = config.SiteName + " is an AI-powered recruiting suite: ATS, screening, and voice interviews to help teams hire faster with less manual work."
	}

	if config.OGImage == "" {
		config.OGImage = "/static/images/og-image.png"
	}

	canonical := strings.TrimRight(config.SiteURL, "/") + config.Path

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Class("scroll-smooth"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Meta(g.Attr("property", "og:url"), Content(canonical)),
				Meta(g.Attr("property", "og:image"), Content(config.OGImage)),
				Link(Rel("canonical"), Href(canonical)),

				Link(Rel("icon"), Href("/static/images/logo.svg")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				ID("top"),
				Class("site"),
				g.Group(content),
			),
		),
	})
}
