package config

type Config interface {
	EnvConfig
	StorageConfig
	LogConfig
}

type EnvConfig interface {
	GetAppName() string
	GetBaseURL() string
	GetDownloadDir() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Storage
	Logging
}

func New() Config {
	return mainConfig{}
}
