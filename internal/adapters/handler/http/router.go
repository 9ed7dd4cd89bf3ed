package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/darkstate/cms/internal/core/ports"
)

// Handlers collects everything the router mounts.
type Handlers struct {
	Auth     *AuthHandler
	Homepage *HomepageHandler
	About    *AboutHandler
	Services *ServicesHandler
	Career   *CareerHandler
	Impact   *ImpactHandler
	Contact  *ContactHandler
}

// Options tune cross-cutting behavior of the router.
type Options struct {
	AllowedOrigins []string
	EnforceWrites  bool
}

func NewHandler(h Handlers, authService ports.AuthService, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	requireSession := RequireSession(authService, opts.EnforceWrites)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"success":   true,
				"message":   "Server is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Get("/verify", h.Auth.Verify)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Route("/homepage", func(r chi.Router) {
			r.Get("/", h.Homepage.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Put("/content", h.Homepage.UpdateContent)
				r.Put("/social-links", h.Homepage.UpdateSocialLinks)
				r.Put("/settings", h.Homepage.UpdateSettings)
				r.Post("/images", h.Homepage.AddImage)
				r.Put("/images/{id}", h.Homepage.UpdateImage)
				r.Delete("/images/{id}", h.Homepage.DeleteImage)
			})
		})

		r.Route("/aboutus", func(r chi.Router) {
			r.Get("/", h.About.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Put("/header", h.About.UpdateHeader)
				r.Put("/mission", h.About.UpdateMission)
				r.Post("/carousel", h.About.AddCarouselImage)
				r.Put("/carousel/{id}/status", h.About.SetCarouselImageStatus)
				r.Delete("/carousel/{id}", h.About.DeleteCarouselImage)
				r.Post("/features", h.About.AddFeature)
				r.Delete("/features/{index}", h.About.RemoveFeature)
				r.Put("/stats/{id}", h.About.UpdateStat)
			})
		})

		r.Route("/services", func(r chi.Router) {
			r.Get("/", h.Services.GetPage)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Post("/", h.Services.Create)
				r.Put("/{id}", h.Services.Update)
				r.Delete("/{id}", h.Services.Delete)
				r.Patch("/{id}/toggle-active", h.Services.ToggleActive)
			})
		})

		r.Route("/services-content", func(r chi.Router) {
			r.Get("/header", h.Services.GetHeader)
			r.Get("/cta", h.Services.GetCTA)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Put("/header", h.Services.UpdateHeader)
				r.Put("/cta", h.Services.UpdateCTA)
			})
		})

		r.Route("/career", func(r chi.Router) {
			r.Get("/", h.Career.GetAll)
			r.Get("/expertise", h.Career.ListExpertiseAreas)
			r.Get("/expertise/{id}", h.Career.GetExpertiseArea)
			r.Get("/career-paths", h.Career.ListCareerPaths)
			r.Get("/career-paths/{id}", h.Career.GetCareerPath)
			r.Get("/benefits", h.Career.ListBenefits)
			r.Get("/benefits/{id}", h.Career.GetBenefit)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Post("/expertise", h.Career.CreateExpertiseArea)
				r.Put("/expertise/{id}", h.Career.UpdateExpertiseArea)
				r.Delete("/expertise/{id}", h.Career.DeleteExpertiseArea)
				r.Post("/career-paths", h.Career.CreateCareerPath)
				r.Put("/career-paths/{id}", h.Career.UpdateCareerPath)
				r.Delete("/career-paths/{id}", h.Career.DeleteCareerPath)
				r.Post("/benefits", h.Career.CreateBenefit)
				r.Put("/benefits/{id}", h.Career.UpdateBenefit)
				r.Delete("/benefits/{id}", h.Career.DeleteBenefit)
			})
		})

		r.Route("/our-impact", func(r chi.Router) {
			r.Get("/", h.Impact.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Put("/content", h.Impact.UpdateContent)
				r.Post("/stats", h.Impact.AddStat)
				r.Delete("/stats/{id}", h.Impact.DeleteStat)
				r.Post("/stories", h.Impact.AddStory)
				r.Delete("/stories/{id}", h.Impact.DeleteStory)
				r.Post("/achievements", h.Impact.AddAchievement)
				r.Delete("/achievements/{id}", h.Impact.DeleteAchievement)
				r.Post("/testimonials", h.Impact.AddTestimonial)
				r.Delete("/testimonials/{id}", h.Impact.DeleteTestimonial)
				r.Post("/impact-areas", h.Impact.AddArea)
				r.Delete("/impact-areas/{id}", h.Impact.DeleteArea)
			})
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", h.Contact.Get)
			r.Get("/public", h.Contact.GetPublic)

			r.Group(func(r chi.Router) {
				r.Use(requireSession)
				r.Post("/info", h.Contact.AddInfo)
				r.Put("/info/{id}", h.Contact.UpdateInfo)
				r.Patch("/info/{id}/toggle", h.Contact.ToggleInfo)
				r.Delete("/info/{id}", h.Contact.DeleteInfo)
				r.Put("/office", h.Contact.UpdateOffice)
				r.Post("/social", h.Contact.AddLink)
				r.Put("/social/{id}", h.Contact.UpdateLink)
				r.Patch("/social/{id}/toggle", h.Contact.ToggleLink)
				r.Delete("/social/{id}", h.Contact.DeleteLink)
			})
		})
	})

	return r
}
