// Command issue-token prints a signed access token for local development
// and manual testing against the API.
//
// Usage:
//
//	issue-token --user=<uuid> [--role=admin]
//
// Requires AUTH_JWT_SECRET (and optionally AUTH_JWT_ISSUER, AUTH_ACCESS_TOKEN_TTL).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/heartmarshall/kotoba-backend/internal/auth"
	"github.com/heartmarshall/kotoba-backend/internal/config"
	"github.com/heartmarshall/kotoba-backend/internal/domain"
)

func main() {
	user := flag.String("user", "", "user id to put in the token subject")
	role := flag.String("role", "user", "role claim: user or admin")
	flag.Parse()

	if *user == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --user=<uuid> [--role=admin]")
		os.Exit(1)
	}

	userID, err := uuid.Parse(*user)
	if err != nil {
		log.Fatalf("invalid --user: %v", err)
	}

	userRole := domain.UserRole(*role)
	if userRole != domain.UserRoleUser && !userRole.IsAdmin() {
		log.Fatalf("invalid --role %q: want user or admin", *role)
	}

	var cfg config.AuthConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read auth config: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTokenTTL)

	token, err := jwtManager.GenerateAccessToken(userID, userRole.String())
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
