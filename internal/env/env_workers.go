//go:build js && wasm

package env

import "github.com/syumai/workers/cloudflare"

// Lookup retrieves an environment variable from the Workers environment,
// treating empty as unset.
func Lookup(key string) (string, bool) {
	value := cloudflare.Getenv(key)
	if value == "" {
		return "", false
	}
	return value, true
}

// Or retrieves an environment variable with a fallback value.
func Or(key, fallback string) string {
	if value, ok := Lookup(key); ok {
		return value
	}
	return fallback
}
