package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
)

type Database struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

// password may come inline or from a secrets file mount
func loadPassword() (string, error) {
	if password, ok := os.LookupEnv("POSTGRES_PASSWORD"); ok {
		return password, nil
	}
	passwordFile, ok := os.LookupEnv("POSTGRES_PASSWORD_FILE")
	if !ok {
		return "", fmt.Errorf(
			"no POSTGRES_PASSWORD or POSTGRES_PASSWORD_FILE env variable set",
		)
	}
	data, err := os.ReadFile(passwordFile)
	if err != nil {
		return "", fmt.Errorf("unable to read from password file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func NewDatabase() (*Database, error) {
	password, err := loadPassword()
	if err != nil {
		return nil, fmt.Errorf("unable to load password: %w", err)
	}

	db := &Database{Password: password}
	for _, v := range []struct {
		name string
		dst  *string
	}{
		{"POSTGRES_USER", &db.Username},
		{"POSTGRES_HOST", &db.Host},
		{"POSTGRES_PORT", &db.Port},
		{"POSTGRES_DB", &db.DBName},
		{"POSTGRES_SSLMODE", &db.SSLMode},
	} {
		if *v.dst, err = requireEnv(v.name); err != nil {
			return nil, err
		}
	}
	return db, nil
}

func (c Database) URL() string {
	return fmt.Sprintf(
		"postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		c.Username,
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.DBName,
		c.SSLMode,
	)
}

// DbURL resolves the connection string, preferring an explicit
// DATABASE_URL over the POSTGRES_* variables.
func DbURL() (string, error) {
	if dbURL, ok := os.LookupEnv("DATABASE_URL"); ok {
		return dbURL, nil
	}
	cfg, err := NewDatabase()
	if err != nil {
		return "", fmt.Errorf("no DATABASE_URL set; %w", err)
	}
	return cfg.URL(), nil
}
