// Package envsource provides domain.Env implementations.
package envsource

import (
	"os"

	"github.com/davarch/ci-env/internal/domain"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// OS reads the live process environment on every call.
type OS struct{}

func (OS) Getenv(key string) string { return os.Getenv(key) }

type Map map[string]string

func (m Map) Getenv(key string) string { return m[key] }

// Overlay returns the first non-empty value across layers.
type Overlay []domain.Env

func (o Overlay) Getenv(key string) string {
	for _, e := range o {
		if v := e.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// ReadFile parses a dotenv file once.
func ReadFile(path string) (Map, error) {
	m, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read env file %s", path)
	}
	return Map(m), nil
}

// Marshal renders vars in dotenv format.
func Marshal(vars map[string]string) (string, error) {
	return godotenv.Marshal(vars)
}
