// Package config provides configuration management for the media library.
//
// It utilizes Viper for loading configuration from environment variables
// and a local .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Remote: video source API (base URL, OAuth token, playlist)
//   - Database: MySQL/SQLite connection details
//   - Storage: S3/MinIO credentials and bucket settings (thumbnail mirror)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
