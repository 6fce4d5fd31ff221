package config

import (
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DefaultAPIURL = "https://api.travis-ci.org"

	apiTokenEnv = "TRAVIS_API_TOKEN"
	apiURLEnv   = "TRAVIS_API_URL"
	debugEnv    = "NOTIFY_DEBUG"
)

type Config struct {
	APIURL   string
	APIToken string
	Debug    bool
}

// Load reads the API settings from the environment after merging envFile into it.
// A missing envFile is not an error and variables already set are never overridden.
// An unset token is passed through as empty.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, errors.Wrapf(err, "failed to load env file %v", envFile)
		}
	}
	return Config{
		APIURL:   getEnv(apiURLEnv, DefaultAPIURL),
		APIToken: os.Getenv(apiTokenEnv),
		Debug:    getEnv(debugEnv, "") != "",
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
