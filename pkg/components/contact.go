package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/talmyra/website/pkg/content"
	"github.com/talmyra/website/pkg/models"
)

func ContactSection(state models.ContactFormState) g.Node {
	return Section(
		Class("section contact"),
		ID("contact"),
		Div(
			Class("container contact-grid"),
			Div(
				Class("contact-copy"),
				SectionHeading("Get Started", "Transform your hiring process", "Join forward-thinking companies that are already saving time and making better hiring decisions with Talmyra."),
				Ul(
					Class("contact-points"),
					contactPoint("settings-2", "Personalized Demo", "See how Talmyra can be customized for your specific hiring needs"),
					contactPoint("rocket", "Quick Implementation", "Get up and running in days, not months, with our seamless onboarding"),
					contactPoint("life-buoy", "Dedicated Support", "Our team of experts will guide you through every step of the process"),
				),
			),
			Div(
				Class("card contact-card"),
				ContactForm(state),
			),
		),
	)
}

func contactPoint(icon, title, text string) g.Node {
	return Li(
		Span(Class("icon-badge"), Icon(icon, "")),
		Div(H3(g.Text(title)), P(g.Text(text))),
	)
}

// ContactForm renders the lead form in its idle state (with any inline
// errors) or, once submitted, the confirmation for the chosen action.
func ContactForm(state models.ContactFormState) g.Node {
	if state.Submitted {
		msg := content.ContactSuccess(state.Type == models.SubmissionDemo)
		return successPanel(msg.Title, msg.Message)
	}

	f := state.Form
	errs := state.FieldErrors

	return g.El("form",
		Class("lead-form"),
		g.Attr("method", "post"),
		g.Attr("action", "/contact#contact"),
		g.Attr("novalidate", ""),

		g.If(state.Error != "", formAlert(state.Error)),

		formInput(inputField{ID: "name", Label: "Full Name", Type: "text", Placeholder: "John Smith", Value: f.Name, Error: errs["name"], Required: true}),
		formInput(inputField{ID: "company", Label: "Company", Type: "text", Placeholder: "Your Company", Value: f.Company, Error: errs["company"], Required: true}),
		formInput(inputField{ID: "website", Label: "Company Website or LinkedIn", Type: "url", Placeholder: "https://company.com", Value: f.Website, Error: errs["website"], Required: true}),
		formInput(inputField{ID: "email", Label: "Work Email", Type: "email", Placeholder: "john@company.com", Value: f.Email, Error: errs["email"], Required: true}),
		formInput(inputField{ID: "phone", Label: "Phone Number (with country code)", Type: "tel", Placeholder: "+1 555 000 0000", Value: f.Phone, Error: errs["phone"], Required: true}),

		Div(
			Class("form-actions"),
			Button(Type("submit"), Name("action"), Value(string(models.SubmissionTrial)), Class("btn btn-primary"),
				g.Text("Get Free Trial"), Icon("arrow-right", ""),
			),
			Button(Type("submit"), Name("action"), Value(string(models.SubmissionDemo)), Class("btn btn-outline"),
				g.Text("Book Demo"),
			),
		),
	)
}
