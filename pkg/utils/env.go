package utils

import "os"

// Getenv retrieves the value of the environment variable named by the key.
// If the variable is unset or empty, Getenv returns the fallback string.
func Getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
