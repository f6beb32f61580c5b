// Package env provides utilities for loading environment variables from .env files.
package env

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// LoadEnvFiles loads environment variables from .env and .env.local in
// the working directory. Both files are optional; .env.local overrides
// .env so a checked-in template can be customized without editing it.
func LoadEnvFiles() error {
	return LoadEnvFilesFromDir(".")
}

// LoadEnvFilesFromDir loads environment files from a specific directory.
// This is useful for testing or when running from a different working directory.
func LoadEnvFilesFromDir(dir string) error {
	baseFile := filepath.Join(dir, ".env")
	localFile := filepath.Join(dir, ".env.local")

	if _, err := os.Stat(baseFile); err == nil {
		if err := godotenv.Overload(baseFile); err != nil {
			return err
		}
	}

	if _, err := os.Stat(localFile); err == nil {
		if err := godotenv.Overload(localFile); err != nil {
			return err
		}
	}

	return nil
}
