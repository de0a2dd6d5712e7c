package config

import (
	"os"
	"strconv"
)

type Config struct {
	Addr                 string
	UseMockEngine        bool
	SourceLang           string
	TargetLang           string
	OpenAIAPIKey         string
	OpenAIBaseURL        string
	OpenAIModel          string
	GenerationTimeoutSec int
	ChunkBuffer          int
	StaticDir            string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "0", "false", "no", "off", "False", "FALSE":
			return false
		default:
			return true
		}
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func Load() Config {
	return Config{
		Addr:                 getenv("TRANSLATOR_ADDR", ":8000"),
		UseMockEngine:        getenvBool("USE_MOCK_TRANSLATOR", false),
		SourceLang:           getenv("TRANSLATOR_SOURCE_LANG", "fr"),
		TargetLang:           getenv("TRANSLATOR_TARGET_LANG", "en-US"),
		OpenAIAPIKey:         getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        getenv("OPENAI_BASE_URL", ""),
		OpenAIModel:          getenv("TRANSLATOR_MODEL", "gpt-4o-mini"),
		GenerationTimeoutSec: getenvInt("GENERATION_TIMEOUT", 120),
		ChunkBuffer:          getenvInt("TRANSLATOR_CHUNK_BUFFER", 16),
		StaticDir:            getenv("TRANSLATOR_STATIC_DIR", ""),
	}
}
