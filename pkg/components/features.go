package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/talmyra/website/pkg/content"
)

func WhyTalmyra() g.Node {
	return Section(
		Class("section why"),
		ID("features"),
		Div(
			Class("container"),
			SectionHeading("Why Talmyra?", "The platform we wish we had", "Designed to transform your technical hiring process from start to finish"),
			Div(
				Class("card-grid card-grid-4"),
				g.Group(g.Map(content.WhyFeatures(), featureCard)),
			),
		),
	)
}

func Benefits() g.Node {
	return Section(
		Class("section benefits"),
		ID("benefits"),
		Div(
			Class("container"),
			SectionHeading("Platform Features", "Powerful tools for modern recruiting", "Everything you need to streamline your recruitment process from start to finish"),
			Div(
				Class("benefit-columns"),
				productCard("ATS", "Complete applicant tracking system to manage your entire recruitment pipeline", "briefcase", content.ATSFeatures()),
				productCard("Interviewer", "AI-powered interview platform that automates candidate assessment and evaluation", "bot", content.InterviewFeatures()),
			),
			Div(
				Class("benefits-cta"),
				A(Href("#contact"), Class("btn btn-primary"), g.Text("Start Free Trial")),
				P(g.Text("No credit card required. See how Talmyra can transform your hiring process.")),
			),
		),
	)
}

func featureCard(f content.Feature) g.Node {
	return Div(
		Class("card feature-card"),
		Span(Class("icon-badge"), Icon(f.Icon, "")),
		H3(g.Text(f.Title)),
		P(g.Text(f.Description)),
	)
}

func productCard(title, description, icon string, features []content.Feature) g.Node {
	return Div(
		Class("card product-card"),
		Div(
			Class("product-card-header"),
			Span(Class("icon-badge"), Icon(icon, "")),
			Div(
				H3(g.Text(title)),
				P(g.Text(description)),
			),
		),
		Ul(
			Class("product-features"),
			g.Group(g.Map(features, func(f content.Feature) g.Node {
				return Li(
					Icon(f.Icon, ""),
					Div(
						Strong(g.Text(f.Title)),
						Span(g.Text(f.Description)),
					),
				)
			})),
		),
	)
}
