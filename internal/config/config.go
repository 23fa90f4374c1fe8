// Package config reads the service configuration from the environment.
// Each constructor returns a typed value or an error naming the missing
// variable.
package config

import (
	"fmt"
	"os"
)

func requireEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%s env variable is not set", name)
	}
	return value, nil
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}

func LogFile() string {
	if path, ok := os.LookupEnv("APP_LOG_FILE"); ok {
		return path
	}
	return "/var/log/minesweeper/server.log"
}
