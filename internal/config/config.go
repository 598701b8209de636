package config

import "os"

type Config struct {
	APIKey string

	FastModel    string
	QualityModel string
	ImageModel   string

	DataDir string // empty = resolve under os.UserConfigDir

	UseMockGateway bool // true = scripted gateway, no network
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

// Load reads all env vars and builds the config. Credentials are read here
// once and handed to the gateway constructor, never inside request building.
func Load() *Config {
	return &Config{
		APIKey: getEnv("DOT_API_KEY", os.Getenv("GEMINI_API_KEY")),

		FastModel:    getEnv("DOT_MODEL_FAST", "gemini-3-flash-preview"),
		QualityModel: getEnv("DOT_MODEL_PRO", "gemini-3-pro-preview"),
		ImageModel:   getEnv("DOT_MODEL_IMAGE", "gemini-2.5-flash-image"),

		DataDir: getEnv("DOT_DATA_DIR", ""),

		UseMockGateway: getBoolEnv("DOT_USE_MOCK", false),
	}
}
