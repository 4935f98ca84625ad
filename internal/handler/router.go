package handler

import (
	"net/http"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services bundles the service layer for router wiring.
type Services struct {
	Auth       *service.AuthService
	Brand      *service.BrandService
	Catalog    *service.CatalogService
	Categories *service.CategoryService
	Staff      *service.StaffService
	Dashboard  *service.DashboardService
}

// NewRouter creates the HTTP router with all routes and middleware.
// Routes follow the API contract of the brand-admin frontend.
func NewRouter(svc *Services, metrics *observability.Metrics, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	auth := JWTAuthMiddleware(svc.Auth, logger)
	perm := func(p domain.Permission) func(http.Handler) http.Handler {
		return RequirePermission(p, logger)
	}

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Auth
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authLoginHandler(svc.Auth, logger))
			r.Post("/refresh", authRefreshHandler(svc.Auth, logger))

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/logout", authLogoutHandler(svc.Auth, logger))
			})
		})

		// Brand
		r.Get("/brand", getBrandHandler(svc.Brand, logger))
		r.With(auth, perm(domain.PermBrandEdit)).
			Put("/brand", updateBrandHandler(svc.Brand, logger))

		// Products
		r.Get("/products", listProductsHandler(svc.Catalog, logger))
		r.Get("/products/{productId}", getProductHandler(svc.Catalog, logger))
		r.With(auth, perm(domain.PermProductsCreate)).
			Post("/products", createProductHandler(svc.Catalog, logger))
		r.With(auth, perm(domain.PermProductsEdit)).
			Put("/products/{productId}", updateProductHandler(svc.Catalog, logger))
		r.With(auth, perm(domain.PermProductsDelete)).
			Delete("/products/{productId}", deleteProductHandler(svc.Catalog, logger))

		// Categories
		r.Get("/categories", listCategoriesHandler(svc.Categories, logger))
		r.Get("/categories/{categoryId}", getCategoryHandler(svc.Categories, logger))
		r.With(auth, perm(domain.PermCategoriesCreate)).
			Post("/categories", createCategoryHandler(svc.Categories, logger))
		r.With(auth, perm(domain.PermCategoriesEdit)).
			Put("/categories/{categoryId}", updateCategoryHandler(svc.Categories, logger))
		r.With(auth, perm(domain.PermCategoriesDelete)).
			Delete("/categories/{categoryId}", deleteCategoryHandler(svc.Categories, logger))

		// Staff (register /stats and /invites before /{staffId})
		r.Get("/staff", listStaffHandler(svc.Staff, logger))
		r.Get("/staff/stats", staffStatsHandler(svc.Staff, logger))
		r.Get("/staff/invites", listInvitesHandler(svc.Staff, logger))
		r.Get("/staff/invites/{inviteId}", getInviteHandler(svc.Staff, logger))
		r.With(auth, perm(domain.PermStaffCreate)).
			Post("/staff/invites", createInviteHandler(svc.Staff, logger))
		r.With(auth, perm(domain.PermStaffEdit)).
			Put("/staff/invites/{inviteId}", respondInviteHandler(svc.Staff, logger))
		r.With(auth, perm(domain.PermStaffEdit)).
			Delete("/staff/invites/{inviteId}", cancelInviteHandler(svc.Staff, logger))
		r.Get("/staff/{staffId}", getStaffHandler(svc.Staff, logger))
		r.With(auth, perm(domain.PermStaffCreate)).
			Post("/staff", createStaffHandler(svc.Staff, logger))
		r.With(auth, perm(domain.PermStaffEdit)).
			Put("/staff/{staffId}", updateStaffHandler(svc.Staff, logger))
		r.With(auth, perm(domain.PermStaffDelete)).
			Delete("/staff/{staffId}", deleteStaffHandler(svc.Staff, logger))

		// Dashboard & operational metrics
		r.Get("/dashboard/overview", dashboardOverviewHandler(svc.Dashboard, logger))
		r.Get("/metrics/admin", adminMetricsHandler(metrics, logger))
	})

	return r
}

// ============================================================
// Health
// ============================================================

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// In-memory stores are ready as soon as the process is up.
		writeJSON(w, http.StatusOK, map[string]any{"ready": true})
	}
}

func adminMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetAdminSnapshot())
	}
}
