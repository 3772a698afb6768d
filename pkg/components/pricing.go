package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/talmyra/website/pkg/content"
)

func PricingSection() g.Node {
	plan := content.Pricing()

	return Section(
		Class("section pricing"),
		ID("pricing"),
		Div(
			Class("container"),
			SectionHeading("Simple, Usage-Based Pricing", "Pay for jobs, not seats", "Start with 5 active roles for $99/month, first 2 months free. No credit card required."),
			Div(
				Class("card pricing-card"),
				Span(Class("badge"), g.Text(plan.Badge)),
				H3(g.Text(plan.Name)),
				P(Class("pricing-summary"), g.Text(plan.Summary)),
				P(
					Class("pricing-price"),
					Span(Class("price"), g.Text(plan.Price)),
					Span(Class("per"), g.Text("/month")),
				),
				P(Class("pricing-unit"), g.Text(plan.Unit)),
				CheckList(plan.Bullets),
				A(Href("#contact"), Class("btn btn-primary btn-block"), g.Text("Claim Offer")),
				P(Class("pricing-footnote"), g.Text(plan.Footnote)),
			),
		),
	)
}
