// seed inserts a handful of test users into the local dev database.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/almasbek/forum-api/internal/domain"
	"github.com/almasbek/forum-api/internal/infrastructure/postgres"
	"github.com/almasbek/forum-api/internal/password"
)

var users = []struct {
	username string
	password string
}{
	{"alice", "password-alice"},
	{"bob", "password-bob"},
	{"carol", "password-carol"},
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	hasher := password.NewArgon2idHasher()

	for _, u := range users {
		hash, err := hasher.Hash(u.password)
		if err != nil {
			log.Fatalf("hash %s: %v", u.username, err)
		}

		user, err := repo.Create(ctx, u.username, hash)
		if errors.Is(err, domain.ErrUsernameTaken) {
			fmt.Printf("skip %s: already exists\n", u.username)
			continue
		}
		if err != nil {
			log.Fatalf("create %s: %v", u.username, err)
		}
		fmt.Printf("created %s (%s)\n", user.Username, user.ID)
	}
}
