package config

// Config holds bookpress configuration.
// Stored at: ~/.bookpress/config.yaml
type Config struct {
	Server   ServerConfig `mapstructure:"server" yaml:"server"`
	Export   ExportConfig `mapstructure:"export" yaml:"export"`
	Defaults DefaultsCfg  `mapstructure:"defaults" yaml:"defaults"`
	LogLevel string       `mapstructure:"log_level" yaml:"log_level"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port int    `mapstructure:"port" yaml:"port"`
}

// ExportConfig holds export execution settings.
type ExportConfig struct {
	// OutputDir overrides the default export directory (~/.bookpress/exports).
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	// Formats are the formats produced when none are requested explicitly.
	Formats []string `mapstructure:"formats" yaml:"formats"`
	// CoverFetchTimeoutSeconds bounds remote cover image downloads.
	CoverFetchTimeoutSeconds int `mapstructure:"cover_fetch_timeout_seconds" yaml:"cover_fetch_timeout_seconds"`
}

// DefaultsCfg specifies default settings selections applied when a
// manuscript's settings omit them.
type DefaultsCfg struct {
	BookType    string `mapstructure:"book_type" yaml:"book_type"`
	StylePreset string `mapstructure:"style_preset" yaml:"style_preset"`
	TrimSize    string `mapstructure:"trim_size" yaml:"trim_size"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8390,
		},
		Export: ExportConfig{
			Formats:                  []string{"pdf", "epub"},
			CoverFetchTimeoutSeconds: 30,
		},
		Defaults: DefaultsCfg{
			BookType:    "novel",
			StylePreset: "classic",
			TrimSize:    "6x9",
		},
		LogLevel: "info",
	}
}
