package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSubmissionType(t *testing.T) {
	tests := []struct {
		action string
		want   SubmissionType
	}{
		{"demo", SubmissionDemo},
		{" Demo ", SubmissionDemo},
		{"trial", SubmissionTrial},
		{"", SubmissionTrial},
		{"something-else", SubmissionTrial},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSubmissionType(tt.action))
		})
	}
}

func TestSubmissionTypeLabel(t *testing.T) {
	assert.Equal(t, "Book Demo", SubmissionDemo.Label())
	assert.Equal(t, "Get Free Trial", SubmissionTrial.Label())
}

func TestNormalize(t *testing.T) {
	form := ContactForm{Name: "  John Smith ", Company: "\tAcme\n", Email: " john@acme.com", Phone: "+1 555 0100 ", Website: " acme.com"}
	form.Normalize()

	assert.Equal(t, ContactForm{Name: "John Smith", Company: "Acme", Email: "john@acme.com", Phone: "+1 555 0100", Website: "acme.com"}, form)

	reg := WebinarRegistration{Name: " Jane ", Email: "jane@acme.com ", JobTitle: " HR Director", Company: "Acme ", Industry: "   "}
	reg.Normalize()

	assert.Equal(t, "Jane", reg.Name)
	assert.Equal(t, "HR Director", reg.JobTitle)
	assert.Empty(t, reg.Industry)
}
