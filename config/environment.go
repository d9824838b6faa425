package config

import (
	"fmt"
	"os"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const defaultAdminPassphrase = "23303123"

type Environment struct {
	IsDevelopment bool
	Domain        string
	CookieSecure  bool

	Port           string
	DatabaseURL    string
	SQLitePath     string
	AllowedOrigins []string
	LogMode        string

	// AdminPassphrase is compared verbatim against the login input.
	AdminPassphrase string
	JWTSecret       string
}

var newSecret = func() (string, error) { return gonanoid.New(48) }

// LoadEnvironment reads the process environment. Every setting has a
// development default; it only fails when no JWT secret is configured and
// none can be generated.
func LoadEnvironment() (Environment, error) {
	// Get domain from environment variable
	domain := os.Getenv("COOKIE_DOMAIN")

	// If no domain is set, we're in development
	isDev := domain == ""
	if isDev {
		domain = "localhost"
	}

	env := Environment{
		IsDevelopment:   isDev,
		Domain:          domain,
		CookieSecure:    !isDev,
		Port:            stringOr("PORT", "8080"),
		DatabaseURL:     strings.TrimSpace(os.Getenv("DB_URL")),
		SQLitePath:      stringOr("SQLITE_PATH", "data/nodebook.db"),
		AllowedOrigins:  listOr("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		LogMode:         stringOr("LOG_MODE", "dev"),
		AdminPassphrase: stringOr("ADMIN_PASSPHRASE", defaultAdminPassphrase),
		JWTSecret:       os.Getenv("JWT_SECRET_KEY"),
	}

	// Without a configured secret, tokens only live as long as this process.
	if env.JWTSecret == "" {
		secret, err := newSecret()
		if err != nil {
			return Environment{}, fmt.Errorf("generate JWT secret: %w", err)
		}
		env.JWTSecret = secret
	}

	return env, nil
}

func stringOr(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func listOr(name string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
