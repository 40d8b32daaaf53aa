package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level written: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is either console or json.
	Format string `mapstructure:"format" default:"console"`
	// Output is where log entries go: stderr, stdout or a file path. stderr
	// keeps stdout free for the diagnostics printed by compare.
	Output string `mapstructure:"output" default:"stderr"`
}
