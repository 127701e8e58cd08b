// Package config provides configuration management for the demo checker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Every key has a default declared on its struct tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, local paths, upload limit)
//   - Storage: S3/MinIO credentials and the bucket holding map archives
//   - Log: Logging level and format
//   - Fetch: Download timeout, size limit and user agent
//   - Check: Map location, reference archives and ignore rules
//
// List values such as CHECK_PATCHES are comma separated.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Check.DemoBase)
package config
