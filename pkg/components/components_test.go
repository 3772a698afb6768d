package components

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/talmyra/website/pkg/content"
	"github.com/talmyra/website/pkg/models"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

var testSite = Site{Name: "Talmyra", URL: "https://talmyra.example.com/"}

func TestLandingPageSections(t *testing.T) {
	html := render(t, LandingPage(testSite, models.ContactFormState{}))

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Talmyra - Hire Smarter, Hire Faster</title>")
	assert.Contains(t, html, `<link rel="canonical" href="https://talmyra.example.com/">`)
	for _, id := range []string{"hero", "videos", "features", "benefits", "pricing", "contact"} {
		assert.Contains(t, html, `id="`+id+`"`, id)
	}
	assert.Contains(t, html, "Interview Smarter.")
	assert.Contains(t, html, "AI-Powered Technical Screening")
	assert.Contains(t, html, "Resume integrity check")
	assert.Contains(t, html, "$99/month for up to 5 active jobs")
	assert.Contains(t, html, `action="/contact#contact"`)
}

func TestVideoShowcase(t *testing.T) {
	html := render(t, VideoShowcase())
	videos := content.Videos()

	assert.Contains(t, html, `src="`+template.HTMLEscapeString(videos[0].EmbedURL())+`"`)
	for _, v := range videos {
		assert.Contains(t, html, `src="`+v.ThumbnailURL()+`"`, v.Title)
		assert.Contains(t, html, `onerror="this.onerror=null;this.src=&#39;`+v.FallbackThumbnailURL()+`&#39;"`, v.Title)
	}
}

func TestContactFormIdleShowsInlineErrors(t *testing.T) {
	state := models.ContactFormState{
		Form: models.ContactForm{Name: "John Smith", Email: "john.acme.com"},
		FieldErrors: models.FieldErrors{
			"email":   "Please enter a valid email address",
			"company": "Company is required",
		},
	}
	html := render(t, ContactForm(state))

	assert.Contains(t, html, `value="John Smith"`)
	assert.Contains(t, html, `value="john.acme.com"`)
	assert.Contains(t, html, `<p class="field-error" id="email-error">Please enter a valid email address</p>`)
	assert.Contains(t, html, `<p class="field-error" id="company-error">Company is required</p>`)
	assert.Contains(t, html, `aria-describedby="email-error"`)
	assert.NotContains(t, html, `id="name-error"`)
	assert.Contains(t, html, `name="action" value="trial"`)
	assert.Contains(t, html, `name="action" value="demo"`)
	assert.NotContains(t, html, `role="alert"`)
}

func TestContactFormGeneralError(t *testing.T) {
	html := render(t, ContactForm(models.ContactFormState{Error: "Something went wrong. Please try again."}))

	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "Something went wrong. Please try again.")
}

func TestContactFormSubmitted(t *testing.T) {
	demo := render(t, ContactForm(models.ContactFormState{Submitted: true, Type: models.SubmissionDemo}))
	assert.Contains(t, demo, "Demo Booked!")
	assert.NotContains(t, demo, "<form")

	trial := render(t, ContactForm(models.ContactFormState{Submitted: true, Type: models.SubmissionTrial}))
	assert.Contains(t, trial, "Setting Up Your Account")
	assert.NotContains(t, trial, "Demo Booked!")
}

func TestWebinarPage(t *testing.T) {
	html := render(t, WebinarPage(testSite, models.WebinarFormState{
		Registration: models.WebinarRegistration{Industry: "Healthcare"},
		FieldErrors:  models.FieldErrors{"jobTitle": "Job title is required"},
		Error:        "Please fill in all required fields",
	}))

	assert.Contains(t, html, `<link rel="canonical" href="https://talmyra.example.com/webinar">`)
	assert.Contains(t, html, "LIVE WEBINAR")
	assert.Contains(t, html, "Christina L")
	assert.Contains(t, html, `id="registration-form"`)
	assert.Contains(t, html, `action="/webinar/register#registration-form"`)
	assert.Contains(t, html, `value="Healthcare"`)
	assert.Contains(t, html, "Job title is required")
	assert.Contains(t, html, "Please fill in all required fields")
}

func TestWebinarFormSubmitted(t *testing.T) {
	html := render(t, WebinarForm(models.WebinarFormState{Submitted: true}))

	assert.Contains(t, html, "Registered!")
	assert.NotContains(t, html, "<form")
}
