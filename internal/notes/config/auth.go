package config

// AuthConfig содержит настройки защиты API статическим ключом.
// Пустой ключ означает, что API не защищен: guard отвечает
// серверной ошибкой, а не пропускает запросы.
type AuthConfig struct {
	APIKey string `yaml:"api_key" env:"NOTES_API_KEY" env-default:""`
}
