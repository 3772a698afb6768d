package formbackend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrBackendUnavailable is returned when the form backend answers with a
// server error.
var ErrBackendUnavailable = errors.New("form backend unavailable")

// Client defines the interface for posting form responses to a third-party
// form collection endpoint
type Client interface {
	Submit(ctx context.Context, endpoint string, fields url.Values) error
}

type clientImpl struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a new form backend client
func NewClient(timeout time.Duration, logger *zap.Logger) Client {
	return &clientImpl{
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("User-Agent", "talmyra-website"),
		logger: logger.Named("formbackend"),
	}
}

// Submit posts fields form-encoded to endpoint. The response body is never
// read; only transport failures and 5xx answers are errors.
func (c *clientImpl) Submit(ctx context.Context, endpoint string, fields url.Values) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormDataFromValues(fields).
		SetDoNotParseResponse(true).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("error posting form response: %w", err)
	}
	if body := resp.RawBody(); body != nil {
		_ = body.Close()
	}

	status := resp.StatusCode()
	if status >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrBackendUnavailable, status)
	}
	if status >= http.StatusBadRequest {
		c.logger.Warn("form backend rejected response",
			zap.String("endpoint", endpoint),
			zap.Int("status", status),
		)
		return nil
	}

	c.logger.Debug("posted form response",
		zap.String("endpoint", endpoint),
		zap.Int("status", status),
		zap.Int("fields", len(fields)),
	)
	return nil
}
