package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/talmyra/website/pkg/clients/formbackend"
	"github.com/talmyra/website/pkg/config"
	"github.com/talmyra/website/pkg/metrics"
	"github.com/talmyra/website/pkg/models"
	"github.com/talmyra/website/pkg/utils"
)

// ErrSubmissionFailed wraps every failure to hand a lead to the form backend.
var ErrSubmissionFailed = errors.New("lead submission failed")

const (
	formContact = "contact"
	formWebinar = "webinar"
)

// LeadSubmissionService defines the interface for forwarding validated leads
type LeadSubmissionService interface {
	SubmitContact(ctx context.Context, form models.ContactForm, kind models.SubmissionType) error
	RegisterWebinar(ctx context.Context, reg models.WebinarRegistration) error
}

type leadSubmissionServiceImpl struct {
	backend formbackend.Client
	config  config.FormBackendConfig
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewLeadSubmissionService creates a new submission service
func NewLeadSubmissionService(
	backend formbackend.Client,
	cfg config.FormBackendConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) LeadSubmissionService {
	return &leadSubmissionServiceImpl{
		backend: backend,
		config:  cfg,
		metrics: m,
		logger:  logger.Named("leads"),
	}
}

// SubmitContact forwards a trial or demo request from the landing page.
func (s *leadSubmissionServiceImpl) SubmitContact(ctx context.Context, form models.ContactForm, kind models.SubmissionType) error {
	fields := url.Values{}
	fields.Set(s.config.NameField, form.Name)
	fields.Set(s.config.CompanyField, form.Company)
	fields.Set(s.config.EmailField, form.Email)
	fields.Set(s.config.PhoneField, form.Phone)
	fields.Set(s.config.WebsiteField, form.Website)
	fields.Set(s.config.ActionField, kind.Label())

	return s.submit(ctx, formContact, string(kind), s.config.ContactEndpoint, form.Email, fields)
}

// RegisterWebinar forwards a webinar registration. Industry is optional and
// sent empty when absent.
func (s *leadSubmissionServiceImpl) RegisterWebinar(ctx context.Context, reg models.WebinarRegistration) error {
	fields := url.Values{}
	fields.Set(s.config.NameField, reg.Name)
	fields.Set(s.config.EmailField, reg.Email)
	fields.Set(s.config.JobTitleField, reg.JobTitle)
	fields.Set(s.config.CompanyField, reg.Company)
	fields.Set(s.config.IndustryField, reg.Industry)

	return s.submit(ctx, formWebinar, "register", s.config.WebinarEndpoint, reg.Email, fields)
}

func (s *leadSubmissionServiceImpl) submit(ctx context.Context, form, action, endpoint, email string, fields url.Values) error {
	log := s.logger.With(
		zap.String("submission_id", uuid.NewString()),
		zap.String("form", form),
		zap.String("action", action),
		zap.String("email_hash", utils.ShortHash(email)),
	)
	log.Info("processing submission")

	if err := s.backend.Submit(ctx, endpoint, fields); err != nil {
		s.metrics.Submissions.WithLabelValues(form, action, "error").Inc()
		log.Error("error forwarding submission", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
	}

	s.metrics.Submissions.WithLabelValues(form, action, "success").Inc()
	log.Info("submission forwarded")
	return nil
}
