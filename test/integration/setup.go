package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/darkstate/cms/internal/adapters/handler/http"
	"github.com/darkstate/cms/internal/adapters/repository/postgres"
	"github.com/darkstate/cms/internal/core/domain"
	"github.com/darkstate/cms/internal/core/services"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func (app *TestApp) Teardown(t *testing.T) {
	t.Helper()
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgc, err := pgcontainer.Run(ctx, "postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("user"),
		pgcontainer.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgc.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgc, connStr, nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := postgres.Open(ctx, dbURL)
	require.NoError(t, err)

	require.NoError(t, postgres.Migrate(ctx, db))

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	homepageRepo := postgres.NewHomepageRepository(db)
	aboutRepo := postgres.NewAboutRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	servicesContentRepo := postgres.NewServicesContentRepository(db)
	careerRepo := postgres.NewCareerRepository(db)
	impactRepo := postgres.NewImpactRepository(db)
	contactRepo := postgres.NewContactRepository(db)

	authSvc := services.NewAuthService(userRepo, sessionRepo)

	router := handler.NewHandler(handler.Handlers{
		Auth:     handler.NewAuthHandler(authSvc),
		Homepage: handler.NewHomepageHandler(services.NewHomepageService(homepageRepo)),
		About:    handler.NewAboutHandler(services.NewAboutService(aboutRepo)),
		Services: handler.NewServicesHandler(services.NewServicesService(serviceRepo, servicesContentRepo)),
		Career:   handler.NewCareerHandler(services.NewCareerService(careerRepo)),
		Impact:   handler.NewImpactHandler(services.NewImpactService(impactRepo)),
		Contact:  handler.NewContactHandler(services.NewContactService(contactRepo)),
	}, authSvc, handler.Options{
		AllowedOrigins: []string{"*"},
		EnforceWrites:  true,
	})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func createAdmin(t *testing.T, db *sql.DB, name, email, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := postgres.NewUserRepository(db)
	user := &domain.User{Name: name, Email: email, PasswordHash: string(hash)}
	require.NoError(t, userRepo.Create(context.Background(), user))
}

// doJSON issues a request with an optional JSON body and bearer token and
// decodes the envelope every endpoint answers with.
func doJSON(t *testing.T, client *http.Client, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func login(t *testing.T, app *TestApp, email, password string) string {
	t.Helper()

	resp, envelope := doJSON(t, app.Client, http.MethodPost, app.Server.URL+"/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := envelope["token"].(string)
	require.NotEmpty(t, token)
	return token
}
