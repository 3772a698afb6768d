package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/talmyra/website/pkg/content"
	"github.com/talmyra/website/pkg/models"
)

func WebinarHero() g.Node {
	w := content.UpcomingWebinar()

	return Section(
		Class("hero webinar-hero"),
		Div(
			Class("container hero-grid"),
			Div(
				Class("hero-copy"),
				Span(Class("badge badge-live"), g.Text(w.Badge)),
				H1(
					Class("hero-title"),
					Span(Class("highlight"), g.Text(w.Title)),
					Br(),
					g.Text(w.Subtitle),
				),
				P(Class("hero-lead"), g.Text(w.Intro)),
				Ul(
					Class("pill-list"),
					g.Group(g.Map(w.Highlights, func(h string) g.Node {
						return Li(Class("pill"), g.Text(h))
					})),
				),
				A(Href("#registration-form"), Class("btn btn-primary btn-lg"), g.Text("Register Free")),
			),
			Div(
				Class("card hero-card"),
				H3(g.Text("What You'll Learn")),
				CheckList(w.Learn),
			),
		),
	)
}

func WebinarDetails() g.Node {
	w := content.UpcomingWebinar()

	return Section(
		Class("section webinar-details"),
		Div(
			Class("container"),
			SectionHeading("", "Why This Session Matters", "AI is already driving change across Sales, Customer Support, and Marketing. Now it's HR's turn."),
			Div(
				Class("card-grid card-grid-3"),
				Div(
					Class("card"),
					H3(g.Text("Topics")),
					CheckList(w.Topics),
				),
				Div(
					Class("card"),
					H3(g.Text("Who Should Attend")),
					CheckList(w.Audience),
				),
				Div(
					Class("card"),
					H3(g.Text("Panelists")),
					Ul(
						Class("panelists"),
						g.Group(g.Map(w.Panelists, func(p content.Panelist) g.Node {
							return Li(
								Span(Class("icon-badge"), Icon("users", "")),
								Div(Strong(g.Text(p.Name)), Span(g.Text(p.Role))),
							)
						})),
					),
				),
			),
		),
	)
}

func WebinarRegistration(state models.WebinarFormState) g.Node {
	w := content.UpcomingWebinar()

	return Section(
		Class("section registration"),
		ID("registration-form"),
		Div(
			Class("container narrow"),
			Div(
				Class("card registration-card"),
				H2(g.Text("Reserve Your Spot")),
				P(Class("section-lead"), g.Text(w.Tagline)),
				WebinarForm(state),
			),
			P(Class("registration-note"), g.Text("Can't make it live? Register to get notified of future sessions.")),
		),
	)
}

// WebinarForm is the registration form or, once submitted, its
// confirmation.
func WebinarForm(state models.WebinarFormState) g.Node {
	if state.Submitted {
		msg := content.WebinarSuccess()
		return successPanel(msg.Title, msg.Message)
	}

	r := state.Registration
	errs := state.FieldErrors

	return g.El("form",
		Class("lead-form"),
		g.Attr("method", "post"),
		g.Attr("action", "/webinar/register#registration-form"),
		g.Attr("novalidate", ""),

		g.If(state.Error != "", formAlert(state.Error)),

		formInput(inputField{ID: "name", Label: "Full Name", Type: "text", Placeholder: "John Smith", Value: r.Name, Error: errs["name"], Required: true}),
		formInput(inputField{ID: "email", Label: "Work Email", Type: "email", Placeholder: "john@company.com", Value: r.Email, Error: errs["email"], Required: true}),
		Div(
			Class("field-row"),
			formInput(inputField{ID: "jobTitle", Label: "Job Title", Type: "text", Placeholder: "HR Director", Value: r.JobTitle, Error: errs["jobTitle"], Required: true}),
			formInput(inputField{ID: "company", Label: "Company", Type: "text", Placeholder: "Your Company", Value: r.Company, Error: errs["company"], Required: true}),
		),
		formInput(inputField{ID: "industry", Label: "Industry", Type: "text", Placeholder: "Technology, Healthcare, etc.", Value: r.Industry, Error: errs["industry"]}),

		Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text("Register for Free Webinar")),
		P(Class("form-note"), g.Text("You'll receive a confirmation email with the webinar details and calendar invite.")),
	)
}
