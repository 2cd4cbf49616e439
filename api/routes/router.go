package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leadhubhq/leadhub-backend/api/controllers"
	"github.com/leadhubhq/leadhub-backend/api/middleware"
	"github.com/leadhubhq/leadhub-backend/internal/auth"
	"github.com/leadhubhq/leadhub-backend/internal/leads"
	"github.com/leadhubhq/leadhub-backend/pkg/config"
	"github.com/leadhubhq/leadhub-backend/pkg/db"
	"github.com/leadhubhq/leadhub-backend/pkg/logger"
	"github.com/leadhubhq/leadhub-backend/pkg/metrics"
	"github.com/leadhubhq/leadhub-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on. RedisClient may
// be nil; rate limiting is skipped without it.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    db.Pinger
	RedisClient *redis.Client
	AuthService auth.Service
	LeadService leads.Service
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
}

func NewRouter(p RouterParams) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(p.Registerer)

	r.Use(
		middleware.Recoverer(p.Logger),
		middleware.RequestID(p.Logger),
		middleware.Logging(p.Logger),
		middleware.Metrics(httpMetrics),
		middleware.CORS(p.Config.CORS),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		p.Config.AuthRateLimit.LoginWindow,
		p.Config.AuthRateLimit.LoginIPLimit,
		p.Config.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		p.Config.AuthRateLimit.RegisterWindow,
		p.Config.AuthRateLimit.RegisterIPLimit,
		p.Config.AuthRateLimit.RegisterEmailLimit,
	)

	var limiterStore middleware.RateLimiterStore
	if p.RedisClient != nil {
		limiterStore = p.RedisClient
	}

	healthDeps := map[string]controllers.Pinger{"database": p.DBPinger}
	if p.RedisClient != nil {
		healthDeps["redis"] = p.RedisClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(p.Config))
		r.Get("/ready", controllers.HealthReady(p.Config, p.Logger, healthDeps))
	})

	if p.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(registerPolicy, limiterStore, p.Logger)).
			Post("/register", controllers.AuthRegister(p.AuthService, p.Logger))
		r.With(middleware.AuthRateLimit(loginPolicy, limiterStore, p.Logger)).
			Post("/login", controllers.AuthLogin(p.AuthService, p.Logger))
		r.Post("/logout", controllers.AuthLogout())

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(p.Config.JWT, p.Logger))
			r.Get("/me", controllers.AuthMe(p.AuthService, p.Logger))
		})
	})

	r.Route("/leads", func(r chi.Router) {
		r.Use(middleware.Auth(p.Config.JWT, p.Logger))

		r.Get("/", controllers.LeadsList(p.LeadService, p.Logger))
		r.Post("/", controllers.LeadsCreate(p.LeadService, p.Logger))
		r.Get("/{leadId}", controllers.LeadsGet(p.LeadService, p.Logger))
		r.Put("/{leadId}", controllers.LeadsUpdate(p.LeadService, p.Logger))
		r.Delete("/{leadId}", controllers.LeadsDelete(p.LeadService, p.Logger))
	})

	return r
}
