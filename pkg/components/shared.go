package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo(siteName string) g.Node {
	return Div(
		Class("logo"),
		Img(Src("/static/images/logo.svg"), Alt(siteName+" logo"), Class("logo-mark")),
		Span(Class("logo-text"), g.Text(siteName)),
	)
}

// Icon renders an iconify lucide icon. An empty label hides it from
// assistive technology.
func Icon(name, ariaLabel string) g.Node {
	if ariaLabel == "" {
		return Span(
			Class("iconify icon"),
			g.Attr("data-icon", "lucide:"+name),
			g.Attr("aria-hidden", "true"),
		)
	}
	return Span(
		Class("iconify icon"),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("role", "img"),
		g.Attr("aria-label", ariaLabel),
	)
}

func SectionHeading(eyebrow, title, lead string) g.Node {
	return Div(
		Class("section-heading"),
		g.If(eyebrow != "", Span(Class("eyebrow"), g.Text(eyebrow))),
		H2(Class("section-title"), g.Text(title)),
		g.If(lead != "", P(Class("section-lead"), g.Text(lead))),
	)
}

func CheckList(items []string) g.Node {
	return Ul(
		Class("check-list"),
		g.Group(g.Map(items, func(item string) g.Node {
			return Li(Icon("check-circle-2", ""), Span(g.Text(item)))
		})),
	)
}

type inputField struct {
	ID          string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Error       string
	Required    bool
}

// formInput renders a labelled input with its inline error message.
func formInput(f inputField) g.Node {
	errID := f.ID + "-error"
	class := "field"
	if f.Error != "" {
		class = "field field-invalid"
	}
	return Div(
		Class(class),
		Label(
			g.Attr("for", f.ID),
			g.Text(f.Label),
			g.If(f.Required, Span(Class("required-mark"), g.Text(" *"))),
		),
		Input(
			Type(f.Type),
			ID(f.ID),
			Name(f.ID),
			Value(f.Value),
			Placeholder(f.Placeholder),
			g.If(f.Required, Required()),
			g.If(f.Error != "", g.Attr("aria-invalid", "true")),
			g.If(f.Error != "", g.Attr("aria-describedby", errID)),
		),
		g.If(f.Error != "", P(Class("field-error"), ID(errID), g.Text(f.Error))),
	)
}

func formAlert(message string) g.Node {
	return Div(
		Class("form-alert"),
		g.Attr("role", "alert"),
		Icon("alert-circle", ""),
		Span(g.Text(message)),
	)
}

func successPanel(title, message string) g.Node {
	return Div(
		Class("form-success"),
		g.Attr("role", "status"),
		Div(Class("success-icon"), Icon("check-circle-2", "Success")),
		H3(g.Text(title)),
		P(g.Text(message)),
	)
}
