package secret

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Base64Suffix marks the environment variable holding the base64 form of a secret.
const Base64Suffix = "_BASE64"

var ErrNotFound = errors.New("secret is not found")

type Fetcher interface {
	FetchSecret() (string, error)
}

// From is a type definition for a function that returns a byte slice and an error.
type From func() ([]byte, error)

// FetchSecret returns the loaded value with surrounding whitespace removed.
func (f From) FetchSecret() (string, error) {
	b, err := f()
	if err != nil {
		return "", err
	}

	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", ErrNotFound
	}

	return s, nil
}

// FromEnv reads the secret verbatim from the environment variable key.
func FromEnv(key string) From {
	return func() ([]byte, error) {
		value := os.Getenv(key)
		if value == "" {
			return nil, ErrNotFound
		}

		return []byte(value), nil
	}
}

// FromBase64Env receives an environment variable key as input,
// reads the Base64 encoded value from the specified environment variable, decodes it,
// and returns a From function.
func FromBase64Env(key string) From {
	return func() ([]byte, error) {
		valueBase64 := os.Getenv(key)
		if valueBase64 == "" {
			return nil, ErrNotFound
		}

		b, err := base64.StdEncoding.DecodeString(valueBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", key, err)
		}

		return b, nil
	}
}

// FirstOf returns the first source that yields a value. Decoding errors stop the search.
func FirstOf(sources ...From) From {
	return func() ([]byte, error) {
		for _, src := range sources {
			b, err := src()
			if errors.Is(err, ErrNotFound) {
				continue
			}

			return b, err
		}

		return nil, ErrNotFound
	}
}

// FromEnvOrBase64 reads key, falling back to key+Base64Suffix.
func FromEnvOrBase64(key string) From {
	return FirstOf(FromEnv(key), FromBase64Env(key+Base64Suffix))
}

// Lookup fetches the secret stored under key and names key in the error when it is missing.
func Lookup(key string) (string, error) {
	s, err := FromEnvOrBase64(key).FetchSecret()
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", key, err)
	}

	return s, nil
}
