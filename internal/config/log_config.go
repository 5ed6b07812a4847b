package config

type LogConfig interface {
	GetLogLevel() string
	GetLogFile() string
}

type Logging struct{}

var _ LogConfig = Logging{}

func (Logging) GetLogLevel() string {
	return GetEnv("LOG_LEVEL", "warn")
}

// GetLogFile returns the log file path; empty means console only.
func (Logging) GetLogFile() string {
	return GetEnv("LOG_FILE", "")
}
