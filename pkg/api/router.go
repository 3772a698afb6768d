package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/talmyra/website/pkg/components"
	"github.com/talmyra/website/pkg/metrics"
	"github.com/talmyra/website/pkg/middleware"
	"github.com/talmyra/website/pkg/models"
	"github.com/talmyra/website/pkg/static"
	"github.com/talmyra/website/pkg/validation"
)

// RouterConfig wires the router's dependencies.
type RouterConfig struct {
	Handlers    *Handlers
	Logger      *zap.Logger
	Registry    *prometheus.Registry
	Metrics     *metrics.Metrics
	Limiter     *middleware.RateLimiter
	CORSOrigins []string

	// TrustedProxies lists the proxies whose forwarding headers are believed
	// when resolving the client IP. Empty trusts none.
	TrustedProxies []string
}

// NewRouter builds the gin engine with every site route registered.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("error registering form rules: %w", err)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("error setting trusted proxies: %w", err)
	}
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(cfg.Logger),
		middleware.Metrics(cfg.Metrics),
	)

	h := cfg.Handlers
	htmlLimit := func(page func(components.Site, string) g.Node) gin.HandlerFunc {
		return cfg.Limiter.Middleware(cfg.Metrics, h.RateLimitedHTML(page))
	}

	router.GET("/", h.LandingPage)
	router.GET("/webinar", h.WebinarPage)
	router.POST("/contact", htmlLimit(landingWithError), h.SubmitContactForm)
	router.POST("/webinar/register", htmlLimit(webinarWithError), h.SubmitWebinarForm)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.CORS(cfg.CORSOrigins))
	{
		jsonLimit := cfg.Limiter.Middleware(cfg.Metrics, RateLimitedJSON)
		v1.POST("/contact", jsonLimit, h.SubmitContactJSON)
		v1.POST("/webinar", jsonLimit, h.SubmitWebinarJSON)
		v1.OPTIONS("/contact", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		v1.OPTIONS("/webinar", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}

	router.GET("/health", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{})))
	router.StaticFS("/static", http.FS(static.Files))

	return router, nil
}

func landingWithError(site components.Site, msg string) g.Node {
	return components.LandingPage(site, models.ContactFormState{Error: msg})
}

func webinarWithError(site components.Site, msg string) g.Node {
	return components.WebinarPage(site, models.WebinarFormState{Error: msg})
}
