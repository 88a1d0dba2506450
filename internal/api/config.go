package api

import (
	"github.com/dmitrymomot/rutkit/pkg/httpserver"
	"github.com/dmitrymomot/rutkit/pkg/qrcode"
	"github.com/dmitrymomot/rutkit/pkg/redis"
	"github.com/dmitrymomot/rutkit/pkg/rut"
	"github.com/dmitrymomot/rutkit/pkg/validator"
)

// Config is the environment configuration of `rut serve`.
type Config struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"` // overrides the environment preset when set

	HTTP  httpserver.Config
	Redis redis.Config

	Unique      bool   `env:"RUT_UNIQUE" envDefault:"false"` // forced on when Redis is configured
	MinBody     uint32 `env:"RUT_MIN" envDefault:"1000000"`
	MaxBody     uint32 `env:"RUT_MAX" envDefault:"99999999"`
	MaxAttempts int    `env:"RUT_MAX_ATTEMPTS" envDefault:"100"`
	QRSize      int    `env:"RUT_QR_SIZE" envDefault:"256"`
	MaxBatch    int    `env:"RUT_MAX_BATCH" envDefault:"1000"`
}

// DefaultConfig matches the envDefault tags above.
func DefaultConfig() Config {
	return Config{
		Env:         "development",
		MinBody:     rut.MinBody,
		MaxBody:     rut.MaxBody,
		MaxAttempts: 100,
		QRSize:      qrcode.DefaultSize,
		MaxBatch:    1000,
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	return validator.Apply(
		validator.BodyInRange("RUT_MIN", c.MinBody),
		validator.BodyInRange("RUT_MAX", c.MaxBody),
		validator.BodyOrder("RUT_MIN", c.MinBody, c.MaxBody),
		validator.MinNum("RUT_MAX_ATTEMPTS", c.MaxAttempts, 1),
		validator.MinNum("RUT_QR_SIZE", c.QRSize, 1),
		validator.MaxNum("RUT_QR_SIZE", c.QRSize, qrcode.MaxSize),
		validator.MinNum("RUT_MAX_BATCH", c.MaxBatch, 1),
	)
}
