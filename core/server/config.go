package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// AllowLocal lets API callers name local file paths as map locations.
	AllowLocal bool `mapstructure:"allow_local" default:"false"`
	// BodyLimitMB caps uploaded map archives.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"64"`
}

// Address returns the listen address.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// BodyLimit returns the upload limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 64 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}
