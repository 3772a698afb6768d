package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/talmyra/website/pkg/components"
	"github.com/talmyra/website/pkg/models"
	"github.com/talmyra/website/pkg/services"
	"github.com/talmyra/website/pkg/validation"
)

const (
	maxFormMemory  = 32 << 10
	maxRequestBody = 64 << 10
)

var errMalformedRequest = errors.New("malformed request")

// normalizer is implemented by the form records.
type normalizer interface {
	Normalize()
}

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	submissionService services.LeadSubmissionService
	site              components.Site
	logger            *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.LeadSubmissionService, site components.Site, logger *zap.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		site:              site,
		logger:            logger.Named("api"),
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// LandingPage renders the landing page with an empty contact form
func (h *Handlers) LandingPage(c *gin.Context) {
	h.renderHTML(c, http.StatusOK, components.LandingPage(h.site, models.ContactFormState{}))
}

// WebinarPage renders the webinar page with an empty registration form
func (h *Handlers) WebinarPage(c *gin.Context) {
	h.renderHTML(c, http.StatusOK, components.WebinarPage(h.site, models.WebinarFormState{}))
}

// SubmitContactForm handles the landing page form post and re-renders the
// page with either inline errors or the confirmation.
func (h *Handlers) SubmitContactForm(c *gin.Context) {
	var form models.ContactForm

	status, fields, err := h.decodeAndValidate(c, &form, decodeForm)
	state := models.ContactFormState{
		Form: form,
		Type: models.ParseSubmissionType(c.Request.PostForm.Get("action")),
	}
	if err != nil {
		state.FieldErrors = fields
		if fields == nil {
			state.Error = validation.MsgRetry
		}
		h.renderHTML(c, status, components.LandingPage(h.site, state))
		return
	}

	if err := h.submissionService.SubmitContact(c.Request.Context(), form, state.Type); err != nil {
		_ = c.Error(err)
		state.Error = validation.MsgRetry
		h.renderHTML(c, http.StatusBadGateway, components.LandingPage(h.site, state))
		return
	}

	state.Submitted = true
	h.renderHTML(c, http.StatusOK, components.LandingPage(h.site, state))
}

// SubmitWebinarForm handles the webinar registration post.
func (h *Handlers) SubmitWebinarForm(c *gin.Context) {
	var reg models.WebinarRegistration
	state := models.WebinarFormState{}

	status, fields, err := h.decodeAndValidate(c, &reg, decodeForm)
	state.Registration = reg
	if err != nil {
		state.FieldErrors = fields
		switch {
		case fields == nil:
			state.Error = validation.MsgRetry
		case validation.HasMissingFields(fields):
			state.Error = validation.MsgRequiredFields
		}
		h.renderHTML(c, status, components.WebinarPage(h.site, state))
		return
	}

	if err := h.submissionService.RegisterWebinar(c.Request.Context(), reg); err != nil {
		_ = c.Error(err)
		state.Error = validation.MsgRetry
		h.renderHTML(c, http.StatusBadGateway, components.WebinarPage(h.site, state))
		return
	}

	state.Submitted = true
	h.renderHTML(c, http.StatusOK, components.WebinarPage(h.site, state))
}

type contactRequest struct {
	models.ContactForm
	Action string `json:"action"`
}

// SubmitContactJSON is the JSON variant of SubmitContactForm for
// script-enhanced clients.
func (h *Handlers) SubmitContactJSON(c *gin.Context) {
	var req contactRequest
	if err := decodeJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	status, fields, err := h.decodeAndValidate(c, &req.ContactForm, nil)
	if err != nil {
		h.validationJSON(c, status, fields)
		return
	}

	kind := models.ParseSubmissionType(req.Action)
	if err := h.submissionService.SubmitContact(c.Request.Context(), req.ContactForm, kind); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": validation.MsgRetry})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"type":   kind,
	})
}

// SubmitWebinarJSON is the JSON variant of SubmitWebinarForm.
func (h *Handlers) SubmitWebinarJSON(c *gin.Context) {
	var reg models.WebinarRegistration
	if err := decodeJSON(c, &reg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	status, fields, err := h.decodeAndValidate(c, &reg, nil)
	if err != nil {
		h.validationJSON(c, status, fields)
		return
	}

	if err := h.submissionService.RegisterWebinar(c.Request.Context(), reg); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, gin.H{"error": validation.MsgRetry})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// RateLimitedHTML answers an over-limit form post on the page it came from.
func (h *Handlers) RateLimitedHTML(page func(components.Site, string) g.Node) func(*gin.Context) {
	return func(c *gin.Context) {
		h.renderHTML(c, http.StatusTooManyRequests, page(h.site, validation.MsgRetry))
	}
}

// RateLimitedJSON answers an over-limit API submission.
func RateLimitedJSON(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, gin.H{"error": validation.MsgRetry})
}

func (h *Handlers) validationJSON(c *gin.Context, status int, fields models.FieldErrors) {
	if fields == nil {
		c.JSON(status, gin.H{"error": "Invalid request"})
		return
	}
	c.JSON(status, gin.H{
		"error":  "Please correct the highlighted fields",
		"fields": fields,
	})
}

// decodeAndValidate fills obj with decode (when given), trims it and runs
// the binding rules. On failure it returns the response status and, for
// rule violations, the inline field errors.
func (h *Handlers) decodeAndValidate(c *gin.Context, obj normalizer, decode func(*gin.Context, any) error) (int, models.FieldErrors, error) {
	if decode != nil {
		if err := decode(c, obj); err != nil {
			h.logger.Debug("error decoding form", zap.Error(err))
			return http.StatusBadRequest, nil, errMalformedRequest
		}
	}

	obj.Normalize()
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		fields, ok := validation.FieldErrors(err)
		if !ok {
			h.logger.Error("error validating form", zap.Error(err))
			return http.StatusInternalServerError, nil, err
		}
		return http.StatusUnprocessableEntity, fields, err
	}
	return http.StatusOK, nil, nil
}

func decodeJSON(c *gin.Context, obj any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)
	return json.NewDecoder(c.Request.Body).Decode(obj)
}

func decodeForm(c *gin.Context, obj any) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)
	if err := c.Request.ParseForm(); err != nil {
		return err
	}
	if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return err
	}
	return binding.MapFormWithTag(obj, c.Request.PostForm, "form")
}

func (h *Handlers) renderHTML(c *gin.Context, status int, page g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := page.Render(c.Writer); err != nil {
		h.logger.Error("error rendering page", zap.String("path", c.Request.URL.Path), zap.Error(err))
		_ = c.Error(err)
	}
}
