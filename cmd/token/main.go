package main

import (
	"flag"
	"fmt"
	"log"

	"poster-board/pkg/config"
	"poster-board/pkg/jwt"
)

// token prints a bearer token for local calls against the poster API.
func main() {
	var (
		userID = flag.Int64("user", 1, "user id carried by the token")
		role   = flag.String("role", "user", "role carried by the token")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	token, err := jwt.NewService(cfg.JWTSecret).GenerateToken(*userID, *role)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Printf("Bearer %s\n", token)
}
