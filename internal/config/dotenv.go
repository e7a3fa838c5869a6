package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads .env.local and .env from the working directory.
func LoadDotEnv() []string {
	return LoadDotEnvFrom(".")
}

// LoadDotEnvFrom loads .env files in dir with priority .env.local > .env.
// godotenv.Load never overwrites variables already set, so OS env wins.
// Returns the files actually loaded.
func LoadDotEnvFrom(dir string) []string {
	var loaded []string
	for _, name := range []string{".env.local", ".env"} {
		f := filepath.Join(dir, name)
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
