package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Stores
		Database
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	// Stores points at the two Apple Books storage roots. Empty values mean
	// "auto-detect the macOS container paths".
	Stores struct {
		BookStorePath       string
		AnnotationStorePath string
	}
	Database struct {
		Path string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("book_store_path", "")
	v.SetDefault("annotation_store_path", "")
	v.SetDefault("database_path", DefaultDatabasePath)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Stores: Stores{
			BookStorePath:       v.GetString("BOOK_STORE_PATH"),
			AnnotationStorePath: v.GetString("ANNOTATION_STORE_PATH"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
