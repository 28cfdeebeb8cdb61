// Package configuration loads process settings from the environment and
// optional .env files. Use returns a lazily-built singleton; tests construct
// their own instances.
package configuration

import (
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const Production = "production"

var singleton = sync.OnceValue(func() *Configuration {
	c := &Configuration{}
	if err := c.load([]string{".env", ".env.local"}); err != nil {
		panic(err)
	}
	return c
})

// Configuration holds everything the server and CLI need from the
// environment.
type Configuration struct {
	ServerPort       int    `env:"PORT" envDefault:"3200"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	GoAppEnvironment string `env:"GO_APP_ENV" envDefault:"development"`
	MaxUploadSize    int64  `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"`

	SocketAddress string `env:"-"`
}

func Use() *Configuration {
	return singleton()
}

// LoadEnv loads those of the given env files that exist, returning how many
// were found.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

func (c *Configuration) load(envFiles []string) error {
	if _, err := LoadEnv(envFiles); err != nil {
		return err
	}
	if err := env.Parse(c); err != nil {
		return err
	}
	c.SocketAddress = fmt.Sprintf(":%d", c.ServerPort)
	return nil
}
