package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Gemini configuration
	GeminiAPIKey     string        `json:"gemini_api_key"`
	GeminiTextModel  string        `json:"gemini_text_model"`
	GeminiImageModel string        `json:"gemini_image_model"`
	GeminiVideoModel string        `json:"gemini_video_model"`
	AITimeout        time.Duration `json:"ai_timeout"`
	AIMaxTokens      int           `json:"ai_max_tokens"`

	// History cache
	HistoryBackend string        `json:"history_backend"` // "memory" or "redis"
	RedisURL       string        `json:"redis_url"`
	RedisPrefix    string        `json:"redis_prefix"`
	HistoryTTL     time.Duration `json:"history_ttl"`

	// CloudFlare R2 asset storage
	R2Endpoint      string `json:"r2_endpoint"`
	R2AccessKey     string `json:"r2_access_key"`
	R2SecretKey     string `json:"r2_secret_key"`
	R2Bucket        string `json:"r2_bucket"`
	R2PublicBaseURL string `json:"r2_public_base_url"`

	// Video combination service
	VideoCombinerURL string `json:"video_combiner_url"`

	// Brand voice
	BrandName          string   `json:"brand_name"`
	BrandTone          string   `json:"brand_tone"`
	BrandStyle         string   `json:"brand_style"`
	BrandColors        []string `json:"brand_colors"`
	BrandKeywords      []string `json:"brand_keywords"`
	BrandBannedPhrases []string `json:"brand_banned_phrases"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`

	// Security
	AdminAPIKey string `json:"admin_api_key"`
}

// Load loads configuration from environment variables and validates it
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Gemini configuration
		GeminiAPIKey:     getEnv("GEMINI_API_KEY", ""),
		GeminiTextModel:  getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash"),
		GeminiImageModel: getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image"),
		GeminiVideoModel: getEnv("GEMINI_VIDEO_MODEL", "veo-3.0-generate-preview"),
		AITimeout:        getEnvAsDuration("AI_TIMEOUT", 120*time.Second),
		AIMaxTokens:      getEnvAsInt("AI_MAX_TOKENS", 4000),

		// History cache
		HistoryBackend: getEnv("HISTORY_BACKEND", "memory"),
		RedisURL:       getEnv("REDIS_URL", "redis://localhost:6379/0"),
		RedisPrefix:    getEnv("REDIS_PREFIX", "mzon:history:"),
		HistoryTTL:     getEnvAsDuration("HISTORY_TTL", 720*time.Hour), // 30 days

		// CloudFlare R2 Configuration
		R2Endpoint:      getEnv("R2_ENDPOINT", ""),
		R2AccessKey:     getEnv("R2_ACCESS_KEY", ""),
		R2SecretKey:     getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:        getEnv("R2_BUCKET", "mzon-assets"),
		R2PublicBaseURL: getEnv("R2_PUBLIC_BASE_URL", ""),

		// Video combination service
		VideoCombinerURL: getEnv("VIDEO_COMBINER_URL", ""),

		// Brand voice
		BrandName:          getEnv("BRAND_NAME", ""),
		BrandTone:          getEnv("BRAND_TONE", ""),
		BrandStyle:         getEnv("BRAND_STYLE", ""),
		BrandColors:        getEnvAsSlice("BRAND_COLORS"),
		BrandKeywords:      getEnvAsSlice("BRAND_KEYWORDS"),
		BrandBannedPhrases: getEnvAsSlice("BRAND_BANNED_PHRASES"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),

		// Security
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.HistoryBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown HISTORY_BACKEND %q", c.HistoryBackend)
	}
	return nil
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsSlice(name string) []string {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
