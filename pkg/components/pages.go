package components

import (
	g "maragu.dev/gomponents"

	"github.com/talmyra/website/pkg/models"
)

// Site carries the per-deployment values every page needs.
type Site struct {
	Name string
	URL  string
}

func LandingPage(site Site, contact models.ContactFormState) g.Node {
	return Layout(
		PageConfig{
			SiteName: site.Name,
			SiteURL:  site.URL,
			Path:     "/",
		},
		SiteNavbar(site.Name),
		Hero(),
		VideoShowcase(),
		WhyTalmyra(),
		Benefits(),
		PricingSection(),
		ContactSection(contact),
		SiteFooter(site.Name),
	)
}

func WebinarPage(site Site, registration models.WebinarFormState) g.Node {
	return Layout(
		PageConfig{
			SiteName:    site.Name,
			SiteURL:     site.URL,
			Path:        "/webinar",
			Title:       "AI in Recruiting: Live Webinar | " + site.Name,
			Description: "Join industry experts for a live session exploring how AI is reshaping HR and your career trajectory.",
		},
		SiteNavbar(site.Name),
		WebinarHero(),
		WebinarDetails(),
		WebinarRegistration(registration),
		SiteFooter(site.Name),
	)
}
