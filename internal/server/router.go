package server

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"folioforge/internal/handlers"
)

// newRouter assembles the route table. The JSON API lives at the root so the
// paths the terminal client calls match the public contract; the HTML pages
// alone carry the session cookie.
func newRouter(sessionManager *scs.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Group(func(api chi.Router) {
		api.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         3600,
		}))

		api.Get("/healthz", handlers.Health)
		api.Post("/auth/register", handlers.Register)
		api.Post("/auth/login", handlers.Login)
		api.Get("/portfolio/p/{username}", handlers.PublicPortfolio)

		api.Group(func(authed chi.Router) {
			authed.Use(handlers.RequireAuth)
			authed.Post("/resumes/upload", handlers.UploadResume)
			authed.Get("/resumes", handlers.ListResumes)
			authed.Get("/resumes/{id}/file", handlers.DownloadResume)
			authed.Put("/resumes/{id}", handlers.UpdateResume)
			authed.Post("/portfolio/generate/{resumeId}", handlers.GeneratePortfolio)
			authed.Get("/portfolio/me", handlers.MyPortfolio)
			authed.Put("/portfolio/me", handlers.SaveMyPortfolio)
			authed.Get("/user/profile", handlers.Profile)
			authed.Put("/user/profile", handlers.UpdateProfile)
			authed.Get("/analytics/summary", handlers.AnalyticsSummary)
		})
	})

	r.Group(func(web chi.Router) {
		web.Use(sessionManager.LoadAndSave)
		web.Get("/", handlers.LandingPage)
		web.Get("/demo", handlers.DemoPage)
		web.Get("/p/{username}", handlers.PortfolioPage)
	})

	return r
}
