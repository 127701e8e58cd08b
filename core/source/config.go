package source

// Config holds settings for remote fetches.
type Config struct {
	// TimeoutSeconds bounds a whole HTTP download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// MaxBytes caps the size of a downloaded archive.
	MaxBytes int64 `mapstructure:"max_bytes" default:"268435456"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"q3-demo-checker/1.0"`
}
