package config

import (
	"crypto/rsa"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"backend/internal/database"
	"backend/internal/mail"
)

// Config is the immutable runtime configuration, resolved once at startup
// from the environment.
type Config struct {
	Port        string
	DatabaseDSN string

	PrivateKey *rsa.PrivateKey
	PublicKey  *rsa.PublicKey
	TokenTTL   time.Duration

	SMTP  mail.SMTPConfig
	Admin database.SeedAdmin

	CORSOrigins []string
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load resolves the configuration and parses the RSA signing key pair from
// their PEM files.
func Load() (*Config, error) {
	dbHost := getenv("DB_HOST", "localhost")
	dbPort := getenv("DB_PORT", "5432")
	dbUser := getenv("DB_USER", "postgres")
	dbPassword := getenv("DB_PASSWORD", "postgres")
	dbName := getenv("DB_NAME", "postgres")
	dbSslMode := getenv("DB_SSLMODE", "disable")

	dsn := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=" + dbSslMode

	privatePEM, err := os.ReadFile(getenv("JWT_PRIVATE_KEY_FILE", "configs/jwt_private.pem"))
	if err != nil {
		return nil, err
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, err
	}

	publicPEM, err := os.ReadFile(getenv("JWT_PUBLIC_KEY_FILE", "configs/jwt_public.pem"))
	if err != nil {
		return nil, err
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, err
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("JWT_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	origins := []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: dsn,
		PrivateKey:  privateKey,
		PublicKey:   publicKey,
		TokenTTL:    ttl,
		SMTP: mail.SMTPConfig{
			Host:     getenv("SMTP_HOST", "localhost"),
			Port:     getenv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getenv("SMTP_FROM", "no-reply@myporto.local"),
		},
		Admin: database.SeedAdmin{
			Email:    getenv("ADMIN_EMAIL", "admin@myporto.local"),
			UserName: getenv("ADMIN_USERNAME", "superadmin"),
			FullName: getenv("ADMIN_FULLNAME", "Super Admin"),
			Password: getenv("ADMIN_PASSWORD", "ChangeMe123"),
		},
		CORSOrigins: origins,
	}, nil
}
