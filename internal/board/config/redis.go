package config

import (
	"net"
	"strconv"
	"time"
)

// CacheConfig включает кэш чтения в Redis.
type CacheConfig struct {
	Enabled bool `yaml:"enabled" env:"BOARD_CACHE_ENABLED" env-default:"false"`
}

// RedisConfig представляет конфигурацию для Redis.
type RedisConfig struct {
	Host             string        `yaml:"host" env:"BOARD_REDIS_HOST" env-default:"localhost"`
	Port             int           `yaml:"port" env:"BOARD_REDIS_PORT" env-default:"6379"`
	Password         string        `yaml:"password" env:"BOARD_REDIS_PASSWORD" env-default:""`
	DB               int           `yaml:"db" env:"BOARD_REDIS_DB" env-default:"0"`
	ConnectTimeout   time.Duration `yaml:"connect_timeout" env:"BOARD_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout      time.Duration `yaml:"read_timeout" env:"BOARD_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout     time.Duration `yaml:"write_timeout" env:"BOARD_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PoolSize         int           `yaml:"pool_size" env:"BOARD_REDIS_POOL_SIZE" env-default:"10"`
	MinIdle          int           `yaml:"min_idle" env:"BOARD_REDIS_MIN_IDLE" env-default:"2"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env:"BOARD_REDIS_IDLE_TIMEOUT" env-default:"5m"`
	MaxConnLifetime  time.Duration `yaml:"max_conn_lifetime" env:"BOARD_REDIS_MAX_CONN_LIFETIME" env-default:"1h"`
	DefaultTTL       time.Duration `yaml:"default_ttl" env:"BOARD_REDIS_DEFAULT_TTL" env-default:"5m"`
	// InvalidationHold - сколько инвалидированный ключ не принимает новые значения.
	InvalidationHold time.Duration `yaml:"invalidation_hold" env:"BOARD_REDIS_INVALIDATION_HOLD" env-default:"30s"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
