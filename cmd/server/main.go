package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/darkstate/cms/internal/adapters/handler/http"
	"github.com/darkstate/cms/internal/adapters/repository/postgres"
	"github.com/darkstate/cms/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, postgres.ConnStringFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	homepageRepo := postgres.NewHomepageRepository(db)
	aboutRepo := postgres.NewAboutRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	servicesContentRepo := postgres.NewServicesContentRepository(db)
	careerRepo := postgres.NewCareerRepository(db)
	impactRepo := postgres.NewImpactRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	// Initialize Services
	authService := services.NewAuthService(userRepo, sessionRepo)
	homepageService := services.NewHomepageService(homepageRepo)
	aboutService := services.NewAboutService(aboutRepo)
	servicesService := services.NewServicesService(serviceRepo, servicesContentRepo)
	careerService := services.NewCareerService(careerRepo)
	impactService := services.NewImpactService(impactRepo)
	contactService := services.NewContactService(contactRepo)

	handler := http.NewHandler(http.Handlers{
		Auth:     http.NewAuthHandler(authService),
		Homepage: http.NewHomepageHandler(homepageService),
		About:    http.NewAboutHandler(aboutService),
		Services: http.NewServicesHandler(servicesService),
		Career:   http.NewCareerHandler(careerService),
		Impact:   http.NewImpactHandler(impactService),
		Contact:  http.NewContactHandler(contactService),
	}, authService, http.Options{
		AllowedOrigins: allowedOrigins(),
		EnforceWrites:  os.Getenv("AUTH_ENFORCE_WRITES") != "false",
	})

	addr := "0.0.0.0:" + port()
	server := &stdhttp.Server{Addr: addr, Handler: handler}

	go func() {
		slog.Info("server listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	slog.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "5001"
}

func allowedOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	origins := strings.Split(raw, ",")
	for i, o := range origins {
		origins[i] = strings.TrimSpace(o)
	}
	return origins
}
