package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/talmyra/website/pkg/models"
)

// General messages shown above a form.
const (
	MsgRequiredFields = "Please fill in all required fields"
	MsgRetry          = "Something went wrong. Please try again."
)

var rules = map[string]func(string) bool{
	"leademail": ValidEmail,
	"intlphone": ValidPhone,
	"website":   ValidWebsite,
}

var requiredMessages = map[string]string{
	"name":     "Name is required",
	"company":  "Company is required",
	"email":    "Email is required",
	"phone":    "Phone number is required",
	"website":  "Website is required",
	"jobTitle": "Job title is required",
}

var formatMessages = map[string]string{
	"leademail": "Please enter a valid email address",
	"intlphone": "Please enter a valid phone number",
	"website":   "Please enter a valid URL (e.g., company.com or linkedin.com/company)",
}

// Register installs the lead rules on v and makes validation errors report
// form field names instead of struct field names.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(formFieldName)
	for tag, rule := range rules {
		rule := rule
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		})
		if err != nil {
			return fmt.Errorf("error registering %s rule: %w", tag, err)
		}
	}
	return nil
}

// RegisterWithGin installs the rules on gin's default binding validator.
func RegisterWithGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not a go-playground validator")
	}
	return Register(v)
}

// New returns a standalone validator using gin's "binding" tag, for code
// that validates outside a request.
func New() (*validator.Validate, error) {
	v := validator.New()
	v.SetTagName("binding")
	if err := Register(v); err != nil {
		return nil, err
	}
	return v, nil
}

// FieldErrors turns a validation failure into inline messages keyed by form
// field. ok is false when err is not a validation failure.
func FieldErrors(err error) (models.FieldErrors, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make(models.FieldErrors, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = message(name, fe.Tag())
	}
	return fields, true
}

// HasMissingFields reports whether any error is a required-field error.
func HasMissingFields(fields models.FieldErrors) bool {
	for name, msg := range fields {
		if requiredMessages[name] == msg {
			return true
		}
	}
	return false
}

func message(field, tag string) string {
	if tag == "required" {
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return "This field is required"
	}
	if msg, ok := formatMessages[tag]; ok {
		return msg
	}
	return "Please enter a valid value"
}

func formFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}
