package config

import (
	"os"
)

const (
	appNameVar     = "APP_NAME"
	baseURLVar     = "ROOMSHARE_BASE_URL"
	downloadDirVar = "ROOMSHARE_DOWNLOAD_DIR"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "RoomShare")
}

// GetBaseURL returns the API base URL including the /api prefix
// (e.g., "https://rooms.example.com/api").
func (EnvVars) GetBaseURL() string {
	return GetEnv(baseURLVar, "http://localhost:8080/api")
}

func (EnvVars) GetDownloadDir() string {
	return GetEnv(downloadDirVar, ".")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
