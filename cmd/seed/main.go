package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/cookgen/internal/adapters/password"
	"github.com/vncsmyrnk/cookgen/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/cookgen/internal/config"
	"github.com/vncsmyrnk/cookgen/internal/core/domain"
	"github.com/vncsmyrnk/cookgen/internal/core/ports"
	"github.com/vncsmyrnk/cookgen/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	var pg config.Postgres
	if err := config.ParseInto(&pg); err != nil {
		log.Fatal(err)
	}

	var input ports.RegisterInput
	var cost int
	flag.StringVar(&input.Username, "username", "admin", "Admin username")
	flag.StringVar(&input.Password, "password", "admin", "Admin password")
	flag.StringVar(&input.Email, "email", "admin@example.com", "Admin email")
	flag.StringVar(&input.FullName, "full-name", "Administrator", "Admin full name")
	flag.IntVar(&cost, "bcrypt-cost", 12, "bcrypt cost")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := postgres.Open(ctx, pg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize Service
	userService := services.NewUserService(
		postgres.NewUserRepository(db),
		password.NewBcryptHasher(cost),
		postgres.NewPreferenceRepository(db),
		postgres.NewSavedRecipeRepository(db),
		postgres.NewRecipeRepository(db),
		postgres.NewIngredientRepository(db),
	)

	log.Printf("Seeding user %q...", input.Username)

	user, err := userService.Register(ctx, input)
	if errors.Is(err, domain.ErrUserAlreadyExists) {
		log.Println("User already exists, nothing to do.")
		return
	}
	if err != nil {
		log.Fatalf("Error seeding user: %v", err)
	}

	log.Printf("User %q created with id %d.", user.Username, user.ID)
}
