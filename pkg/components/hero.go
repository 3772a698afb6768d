package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		Class("hero"),
		ID("hero"),

		Div(Class("hero-background"), g.Attr("aria-hidden", "true")),

		Div(
			Class("container hero-grid"),
			Div(
				Class("hero-copy"),
				H1(
					Class("hero-title"),
					Span(Class("highlight"), g.Text("Interview Smarter.")),
					Br(),
					Span(Class("highlight highlight-alt"), g.Text("Hire Faster.")),
				),
				P(
					Class("hero-lead"),
					g.Text("The AI-powered platform that revolutionizes your technical hiring process with"),
					Strong(g.Text(" automated screening")),
					g.Text(" and"),
					Strong(g.Text(" unbiased evaluations")),
					g.Text("."),
				),
				Div(
					Class("hero-actions"),
					A(Href("#contact"), Class("btn btn-primary btn-lg"), g.Text("Get Started"), Icon("arrow-right", "")),
					A(Href("#videos"), Class("btn btn-ghost btn-lg"), Icon("play", ""), g.Text("Watch Demo")),
				),
			),
			Div(
				Class("hero-visual"),
				Img(Src("/static/images/hero.svg"), Alt("Talmyra platform interface"), g.Attr("loading", "eager")),
			),
		),
	)
}
