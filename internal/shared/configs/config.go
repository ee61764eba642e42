package configs

// Config holds all configuration for the application.
type Config struct {
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Parser  ParserConfig  `mapstructure:"parser" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
}

// ParserConfig holds line reading configuration.
type ParserConfig struct {
	MaxLineBytes int `mapstructure:"max_line_bytes" validate:"required,min=256"` // lines above this are skipped
}

// ReportConfig holds report rendering configuration.
type ReportConfig struct {
	Format          string `mapstructure:"format" validate:"required,oneof=text json"`
	ShowPerformance bool   `mapstructure:"show_performance"`
	TopUserAgents   int    `mapstructure:"top_user_agents" validate:"min=0,max=100"`
}

// MetricsConfig holds metrics export configuration.
type MetricsConfig struct {
	TextfilePath string `mapstructure:"textfile_path"` // empty disables the export
}
