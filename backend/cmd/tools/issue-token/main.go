// issue-token registers a user in the forum database and prints an access
// token for it. Tokens are normally issued by the authentication service;
// this is for local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	"github.com/itchan-dev/forum/shared/jwt"
)

func main() {
	var configFolder, userId, username string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&userId, "uid", "user-dev", "user id to embed in the token")
	flag.StringVar(&username, "username", "dicoding", "username to store for the user")
	flag.Parse()

	cfg := config.MustLoad(configFolder)

	storage, err := pg.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	if err := storage.MigrateUp(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	user := domain.User{Id: userId, Username: username}
	if err := storage.UpsertUser(context.Background(), user); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to store user: %v\n", err)
		os.Exit(1)
	}

	token, err := jwt.New(cfg.JwtKey(), cfg.JwtTTL()).NewToken(user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=================================================")
	fmt.Printf("  Access token for %s (%s)\n", username, userId)
	fmt.Println("=================================================")
	fmt.Println()
	fmt.Println(token)
	fmt.Println()
	fmt.Println("Use it as:")
	fmt.Printf("Authorization: Bearer %s\n", token)
	fmt.Println("=================================================")
}
