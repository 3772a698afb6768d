package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/talmyra/website/pkg/content"
)

// VideoShowcase renders the featured (autoplaying, muted) video followed by
// the gallery. Gallery cards open the video on YouTube.
func VideoShowcase() g.Node {
	videos := content.Videos()
	featured := videos[0]

	return Section(
		Class("section videos"),
		ID("videos"),
		Div(
			Class("container"),
			SectionHeading("", "See Talmyra in Action", "Watch how our AI-powered platform transforms technical hiring with real-world demonstrations"),

			Div(
				Class("video-featured"),
				g.El("iframe",
					Src(featured.EmbedURL()),
					g.Attr("title", featured.Title),
					g.Attr("allow", "autoplay; encrypted-media; picture-in-picture"),
					g.Attr("allowfullscreen", ""),
					g.Attr("loading", "lazy"),
				),
			),

			Div(
				Class("video-grid"),
				g.Group(g.Map(videos, videoCard)),
			),
		),
	)
}

func videoCard(v content.Video) g.Node {
	return A(
		Class("video-card"),
		Href("https://www.youtube.com/watch?v="+v.YouTubeID),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Div(
			Class("video-thumb"),
			Img(
				Src(v.ThumbnailURL()),
				Alt(v.Title),
				g.Attr("loading", "lazy"),
				g.Attr("onerror", "this.onerror=null;this.src='"+v.FallbackThumbnailURL()+"'"),
			),
			Span(Class("video-play"), Icon("play", "Play "+v.Title)),
		),
		H3(g.Text(v.Title)),
		P(g.Text(v.Description)),
	)
}
