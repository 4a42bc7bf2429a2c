package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Dataset DatasetConfig `mapstructure:"dataset" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatasetConfig controls where hexagram reference data comes from.
type DatasetConfig struct {
	// Path of a YAML dataset file. Empty selects the dataset bundled with
	// the binary.
	Path string `mapstructure:"path"`
	// DefaultHexagram is substituted when a cast resolves to a number the
	// dataset has no record for.
	DefaultHexagram int `mapstructure:"default_hexagram" validate:"min=1,max=64"`
}
