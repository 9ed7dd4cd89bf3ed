package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/darkstate/cms/internal/adapters/repository/postgres"
	"github.com/darkstate/cms/internal/core/domain"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var name, email, password string
	flag.StringVar(&name, "name", "", "Admin display name")
	flag.StringVar(&email, "email", "", "Admin email")
	flag.StringVar(&password, "password", "", "Admin password")
	flag.Parse()

	if email == "" || password == "" {
		log.Fatal("-email and -password are required")
	}
	if name == "" {
		name = "Admin"
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, postgres.ConnStringFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)

	email = strings.ToLower(strings.TrimSpace(email))
	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		log.Fatal(err)
	}
	if existing != nil {
		log.Printf("User %s already exists, skipping.", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	user := &domain.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := userRepo.Create(ctx, user); err != nil {
		log.Fatal(err)
	}

	log.Printf("Created admin user %s (%s).", user.Name, user.Email)
}
