package redis

import "time"

// Config describes how to reach the Redis server backing RUT reservations.
// ConnectionURL is optional: an empty value means Redis is not used and
// callers fall back to in-memory storage.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                            // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`  // connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"` // delay between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"`
	KeyPrefix      string        `env:"REDIS_KEY_PREFIX" envDefault:"rut"`     // namespace for every key written
	ReservationTTL time.Duration `env:"REDIS_RESERVATION_TTL" envDefault:"0s"` // 0 keeps reservations until reset
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool { return c.ConnectionURL != "" }
