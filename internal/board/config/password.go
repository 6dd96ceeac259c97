package config

// PasswordConfig содержит настройки хэширования паролей.
type PasswordConfig struct {
	BCryptCost int `yaml:"bcrypt_cost" env:"BOARD_BCRYPT_COST" env-default:"10"`
}
