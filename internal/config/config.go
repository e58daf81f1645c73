package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config facility-inspect client configuration.
type Config struct {
	API struct {
		BaseURL        string
		TimeoutSeconds int
	}
	Session struct {
		Path string
	}
	List struct {
		PageSize int
	}
	Map struct {
		APIKey string
		Zoom   int
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = getEnv("INSPECT_API_URL", "https://facilityprofilingupdated.onrender.com")
	cfg.API.TimeoutSeconds = parseInt(getEnv("INSPECT_TIMEOUT_SECONDS", "30"), 30)

	cfg.Session.Path = getEnv("INSPECT_SESSION_FILE", defaultSessionPath())
	cfg.List.PageSize = parseInt(getEnv("INSPECT_PAGE_SIZE", "20"), 20)

	cfg.Map.APIKey = getEnv("INSPECT_MAP_API_KEY", "")
	cfg.Map.Zoom = parseInt(getEnv("INSPECT_MAP_ZOOM", "10"), 10)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "console")

	return cfg
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".facility-inspect/session.json"
	}
	return filepath.Join(home, ".facility-inspect", "session.json")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
