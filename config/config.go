package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	Addr           string   `envconfig:"ADDR" default:":5000"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" required:"true"`
	PostgresURL    string   `envconfig:"POSTGRES_URL" required:"true"`
	JWTKey         string   `envconfig:"JWT_KEY" required:"true"`
	Debug          bool     `envconfig:"DEBUG" default:"false"`
}

func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
