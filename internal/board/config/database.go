package config

import (
	"net"
	"net/url"
	"strconv"
)

// PostgresConfig содержит настройки подключения к базе данных.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"BOARD_POSTGRES_HOST" env-default:"127.0.0.1"`
	Port     int    `yaml:"port" env:"BOARD_POSTGRES_PORT" env-default:"5431"`
	User     string `yaml:"user" env:"BOARD_POSTGRES_USER" env-default:"app"`
	Password string `yaml:"password" env:"BOARD_POSTGRES_PASSWORD" env-default:"1234"`
	Database string `yaml:"database" env:"BOARD_POSTGRES_DB" env-default:"flask"`
	MinConn  int    `yaml:"min_conn" env:"BOARD_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"BOARD_POSTGRES_MAX_CONN" env-default:"10"`
}

// GetDSN возвращает URL подключения к PostgreSQL для пула и миграций.
// Учетные данные экранируются, IPv6-адрес берется в скобки.
func (p *PostgresConfig) GetDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     p.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
