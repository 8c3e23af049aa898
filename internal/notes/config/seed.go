package config

// SeedConfig управляет наполнением базы стартовыми данными.
type SeedConfig struct {
	Enabled bool `yaml:"enabled" env:"NOTES_SEED_ENABLED" env-default:"true"`
}
