package config

// Config represents the full taskman configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Backing file settings
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`

	// Logging settings
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StorageConfig configures the task file
type StorageConfig struct {
	File string `yaml:"file" mapstructure:"file"`
	// Empty means infer from the file extension
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig configures diagnostic logging
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}
