package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// makeToken signs a token carrying the given role.
func makeToken(secret string, role string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})

	return t.SignedString([]byte(secret))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	ttl := flag.Duration("ttl", 365*24*time.Hour, "token lifetime")
	flag.Parse()

	adminSecret := envOr("ADMIN_JWT_SECRET", "admin_secret_key")
	userSecret := envOr("USER_JWT_SECRET", "user_secret_key")

	for _, t := range []struct{ name, secret, role string }{
		{"ADMIN_TOKEN", adminSecret, "admin"},
		{"USER_TOKEN", userSecret, "user"},
	} {
		token, err := makeToken(t.secret, t.role, *ttl)
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to sign token:", err)
			os.Exit(1)
		}
		fmt.Println(t.name + "=" + token)
	}
}
