package lingo

import "github.com/caarlos0/env/v11"

// Config carries the environment-derived defaults shared by the CLI and the
// language server.
type Config struct {
	Language string `env:"LINGO_LANGUAGE"`
	RootPath string `env:"LINGO_ROOT" envDefault:"translations"`
	Format   string `env:"LINGO_FORMAT" envDefault:"lng"`
}

// FromEnv loads configuration from LINGO_* environment variables.
func FromEnv() (Config, error) {
	return env.ParseAs[Config]()
}
