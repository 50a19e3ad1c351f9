package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer

	Backend  Backend  `envPrefix:"BACKEND_"`
	Database Database `envPrefix:"DATABASE_"`
}

// Backend is the remote bakery service every business operation is
// delegated to. One base URL for the whole client.
type Backend struct {
	BaseURL        string        `env:"BASE_URL" envDefault:"http://localhost:8181"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// Database is the local store standing in for the browser's local
// storage: session, cart and last-transaction records.
type Database struct {
	Path string `env:"PATH" envDefault:"storefront.db"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
