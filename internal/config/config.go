package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Content library layout
	ContentDir   string
	TempAudioDir string
	FeedbackFile string

	// Conversation history
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	HistoryLimit  int

	// Translation providers
	GoogleTranslateURL string
	MyMemoryURL        string
	MyMemoryEmail      string
	LibreTranslateURL  string
	TranslateTimeout   time.Duration
	BatchDelay         time.Duration

	// Text-to-speech
	TTSBaseURL     string
	TTSTimeout     time.Duration
	AudioMaxAge    time.Duration
	AudioPlayerCmd string

	// Content cache
	ContentCacheTTL time.Duration

	// Per-IP request budget on /api routes; zero disables limiting
	RateLimit      float64
	RateLimitBurst int

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		ContentDir:   getEnv("CONTENT_DIR", "content_library"),
		TempAudioDir: getEnv("TEMP_AUDIO_DIR", "temp_audio"),
		FeedbackFile: getEnv("FEEDBACK_FILE", "static/feedback.txt"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		HistoryLimit:  getEnvAsInt("HISTORY_LIMIT", 250),

		GoogleTranslateURL: getEnv("GOOGLE_TRANSLATE_URL", "https://translate.googleapis.com/translate_a/single"),
		MyMemoryURL:        getEnv("MYMEMORY_URL", "https://api.mymemory.translated.net/get"),
		MyMemoryEmail:      getEnv("MYMEMORY_EMAIL", ""),
		LibreTranslateURL:  getEnv("LIBRETRANSLATE_URL", "https://translate.disroot.org/translate"),
		TranslateTimeout:   getEnvAsDuration("TRANSLATE_TIMEOUT", 10*time.Second),
		BatchDelay:         getEnvAsDuration("TRANSLATE_BATCH_DELAY", 500*time.Millisecond),

		TTSBaseURL:     getEnv("TTS_BASE_URL", "https://translate.google.com/translate_tts"),
		TTSTimeout:     getEnvAsDuration("TTS_TIMEOUT", 15*time.Second),
		AudioMaxAge:    getEnvAsDuration("AUDIO_MAX_AGE", 2*time.Hour),
		AudioPlayerCmd: getEnv("AUDIO_PLAYER_CMD", ""),

		ContentCacheTTL: getEnvAsDuration("CONTENT_CACHE_TTL", 5*time.Minute),

		RateLimit:      getEnvAsFloat("RATE_LIMIT", 5),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 10),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
