package models

import "strings"

// ContactForm is the lead-capture record posted from the landing page.
type ContactForm struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Company string `form:"company" json:"company" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,leademail"`
	Phone   string `form:"phone" json:"phone" binding:"required,intlphone"`
	Website string `form:"website" json:"website" binding:"required,website"`
}

// Normalize trims surrounding whitespace from every field.
func (f *ContactForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Company = strings.TrimSpace(f.Company)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Website = strings.TrimSpace(f.Website)
}

// WebinarRegistration is the record posted from the webinar page.
type WebinarRegistration struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,leademail"`
	JobTitle string `form:"jobTitle" json:"jobTitle" binding:"required"`
	Company  string `form:"company" json:"company" binding:"required"`
	Industry string `form:"industry" json:"industry"`
}

func (r *WebinarRegistration) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.Company = strings.TrimSpace(r.Company)
	r.Industry = strings.TrimSpace(r.Industry)
}

// SubmissionType distinguishes the two contact form buttons.
type SubmissionType string

const (
	SubmissionTrial SubmissionType = "trial"
	SubmissionDemo  SubmissionType = "demo"
)

// ParseSubmissionType maps the posted action to a submission type. The
// form's default submit is a trial request, so anything but "demo" is one.
func ParseSubmissionType(action string) SubmissionType {
	if strings.EqualFold(strings.TrimSpace(action), string(SubmissionDemo)) {
		return SubmissionDemo
	}
	return SubmissionTrial
}

// Label is the action text recorded with the lead.
func (t SubmissionType) Label() string {
	if t == SubmissionDemo {
		return "Book Demo"
	}
	return "Get Free Trial"
}

// FieldErrors maps a form field name to its inline error message.
type FieldErrors map[string]string

// ContactFormState is everything the contact form needs to render itself.
type ContactFormState struct {
	Form        ContactForm
	FieldErrors FieldErrors
	Error       string
	Submitted   bool
	Type        SubmissionType
}

// WebinarFormState is the webinar equivalent of ContactFormState.
type WebinarFormState struct {
	Registration WebinarRegistration
	FieldErrors  FieldErrors
	Error        string
	Submitted    bool
}
