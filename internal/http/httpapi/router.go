// Package httpapi assembles the chi router and middleware chain.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"celora/internal/http/handlers"
	"celora/internal/middleware"
)

// Options tunes the cross-cutting middleware.
type Options struct {
	AllowedOrigins  []string
	DisplayCurrency string
	CountryLookup   middleware.CountryLookup
	RateLimitPerMin int
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.Logger(app.Logger),
		middleware.DisplayCurrency(opts.DisplayCurrency, opts.CountryLookup),
	)
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute, "/v1/healthz"))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/templates", func(r chi.Router) {
		r.Get("/", app.ListTemplates)
		r.Get("/featured", app.FeaturedTemplates)
		r.Get("/trending", app.TrendingTemplates)
		r.Get("/{id}", app.GetTemplate)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(app.JWTSecret))
			r.Get("/{id}/entitlement", app.TemplateEntitlement)
			r.Post("/{id}/download", app.DownloadTemplate)
		})
	})

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/register", app.Register)
		r.Post("/register-seller", app.RegisterSeller)
		r.Post("/login", app.Login)
		r.With(middleware.AuthJWT(app.JWTSecret)).Post("/logout", app.Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(app.JWTSecret))

		r.Get("/v1/me", app.Me)
		r.Put("/v1/me/plan", app.UpdatePlan)

		r.Route("/v1/cart", func(r chi.Router) {
			r.Get("/", app.GetCart)
			r.Post("/", app.AddCartItem)
			r.Delete("/", app.ClearCart)
			r.Delete("/{itemId}", app.RemoveCartItem)
		})

		r.Route("/v1/library", func(r chi.Router) {
			r.Get("/", app.GetLibrary)
			r.Post("/{templateId}", app.SaveToLibrary)
			r.Delete("/{templateId}", app.RemoveFromLibrary)
		})
	})

	r.Get("/v1/stats/overview", app.StatsOverview)

	return r
}
