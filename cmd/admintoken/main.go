// Command admintoken mints an admin bearer token signed with JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"

	"match-rating-backend/internal/auth"
	"match-rating-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	username := flag.String("user", "admin", "username recorded in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime (default 12h)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	authService, err := auth.NewAuthService(cfg.JWTSecret, *ttl)
	if err != nil {
		logrus.Fatal("Failed to initialize auth service: ", err)
	}

	token, err := authService.GenerateToken(*username)
	if err != nil {
		logrus.Fatal("Failed to generate token: ", err)
	}

	fmt.Fprintln(os.Stdout, token)
}
