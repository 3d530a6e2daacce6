// Command tokengen mints a signed bearer token for manual testing.
//
// It reads the same CATALOG_AUTH_* environment variables as the server, so
// tokens generated here validate against a running instance. The database
// settings are not required.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/salonworks/catalog-api/internal/config"
	"github.com/salonworks/catalog-api/internal/service/auth"
)

func main() {
	subject := flag.String("subject", "admin", "token subject")
	admin := flag.Bool("admin", false, "mint an admin token instead of a user token")
	flag.Parse()

	if err := run(*subject, *admin); err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
}

func run(subject string, admin bool) error {
	cfg, err := loadAuthConfig()
	if err != nil {
		return err
	}

	jwtService, err := auth.NewJWTService(cfg)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}

	role := auth.RoleUser
	if admin {
		role = auth.RoleAdmin
	}

	token, err := jwtService.GenerateToken(context.Background(), subject, role)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Println(token)
	return nil
}

// loadAuthConfig reads only the auth section of the server configuration,
// so the tool works without a database URL configured.
func loadAuthConfig() (config.AuthConfig, error) {
	v := viper.New()
	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"auth.jwt_secret", "auth.token_lifetime_minutes"} {
		if err := v.BindEnv(key); err != nil {
			return config.AuthConfig{}, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	cfg := config.AuthConfig{
		JWTSecret:            v.GetString("auth.jwt_secret"),
		TokenLifetimeMinutes: v.GetInt("auth.token_lifetime_minutes"),
	}
	if cfg.JWTSecret == "" {
		return config.AuthConfig{}, fmt.Errorf("CATALOG_AUTH_JWT_SECRET is not set")
	}

	return cfg, nil
}
