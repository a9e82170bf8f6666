package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/vncsmyrnk/cookgen/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/cookgen/internal/config"
)

const usage = "usage: migrations <up|down|status|redo|version|up-to VERSION|down-to VERSION>"

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}
	command := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Only the Postgres block is needed here; the JWT secret may be absent.
	var pg config.Postgres
	if err := config.ParseInto(&pg); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, pg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, command, os.Args[2:]...); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Migration command %q executed successfully.\n", command)
}
