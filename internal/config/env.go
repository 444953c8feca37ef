// Package config loads game and server settings from YAML files, .env files
// and the process environment.
package config

import "os"

// GetEnv returns the environment variable key, or fallback when it is unset.
// A variable set to the empty string is returned as is.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
