package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func SiteFooter(siteName string) g.Node {
	currentYear := time.Now().Year()

	return Footer(
		Class("footer"),
		Div(
			Class("container footer-grid"),

			Div(
				Class("footer-brand"),
				Logo(siteName),
				P(g.Text("AI-powered recruiting: applicant tracking, automated screening, and voice interviews in one workspace.")),
			),

			Div(
				P(Class("footer-heading"), g.Text("Product")),
				Ul(
					Li(A(Href("/#features"), g.Text("Features"))),
					Li(A(Href("/#pricing"), g.Text("Pricing"))),
					Li(A(Href("/#videos"), g.Text("Demo Videos"))),
				),
			),

			Div(
				P(Class("footer-heading"), g.Text("Company")),
				Ul(
					Li(A(Href("/webinar"), g.Text("Webinar"))),
					Li(A(Href("/#contact"), g.Text("Contact"))),
					Li(A(Href("/#pricing"), g.Text("Plans"))),
				),
			),
		),

		Div(
			Class("container footer-bottom"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", currentYear, siteName))),
			A(Href("#top"), Class("back-to-top"), g.Attr("aria-label", "Back to top"), Icon("arrow-up", "")),
		),
	)
}
