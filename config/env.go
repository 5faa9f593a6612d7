package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvPath names the variable holding a config file path
const EnvPath = "SWORDPLAY_CONFIG"

// ResolvePath picks the config file: an explicit flag value wins, then the
// process environment, then the first env file that sets EnvPath
// Missing env files are skipped; an empty result means built-in defaults
func ResolvePath(flagPath string, envFiles ...string) (string, error) {
	if flagPath != "" {
		return flagPath, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("env file %s: %w", f, err)
		}
		if p := vars[EnvPath]; p != "" {
			return p, nil
		}
	}
	return "", nil
}
