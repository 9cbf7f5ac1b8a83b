package handler

import (
	"os"

	"github.com/spf13/viper"
)

// RootDir resolves the data directory: environment first, then
// configuration, then the default.
func RootDir() string {
	dataDir := os.Getenv("SEGMETA_ROOT")
	if dataDir != "" {
		return dataDir
	}
	dataDir = viper.GetString("segmeta.root")
	if dataDir != "" {
		return dataDir
	}
	return "./data"
}

// RegisteredFiles returns the configured registry of known base file
// names.
func RegisteredFiles() []string {
	return viper.GetStringSlice("segmeta.files")
}
