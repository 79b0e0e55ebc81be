package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis   RedisConfig
	JWT     JWTConfig
	CORS    CORSConfig
	Log     LogConfig
	Seed    SeedConfig
	Session SessionConfig
	GenAI   GenAIConfig
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig controls the startup dataset synthesizer.
type SeedConfig struct {
	Value           int64
	StudentCountMin int
	StudentCountMax int
	AttendanceDays  int
	MaxTeacherLoad  int
}

// SessionConfig governs the session repository.
type SessionConfig struct {
	TTL time.Duration
}

// GenAIConfig points at the external text-generation service.
type GenAIConfig struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.JWT = JWTConfig{
		Secret:     v.GetString("JWT_SECRET"),
		Expiration: parseDuration(v.GetString("JWT_EXPIRATION"), 24*time.Hour),
		Issuer:     v.GetString("JWT_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		Value:           v.GetInt64("SEED_VALUE"),
		StudentCountMin: v.GetInt("SEED_STUDENT_COUNT_MIN"),
		StudentCountMax: v.GetInt("SEED_STUDENT_COUNT_MAX"),
		AttendanceDays:  v.GetInt("SEED_ATTENDANCE_DAYS"),
		MaxTeacherLoad:  v.GetInt("SEED_MAX_TEACHER_LOAD"),
	}

	cfg.Session = SessionConfig{
		TTL: parseDuration(v.GetString("SESSION_TTL"), 12*time.Hour),
	}

	cfg.GenAI = GenAIConfig{
		BaseURL: v.GetString("GENAI_BASE_URL"),
		Model:   v.GetString("GENAI_MODEL"),
		APIKey:  v.GetString("GENAI_API_KEY"),
		Timeout: parseDuration(v.GetString("GENAI_TIMEOUT"), 15*time.Second),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_SECRET", "dev_secret")
	v.SetDefault("JWT_EXPIRATION", "24h")
	v.SetDefault("JWT_ISSUER", "school-portal-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_VALUE", 20250701)
	v.SetDefault("SEED_STUDENT_COUNT_MIN", 40)
	v.SetDefault("SEED_STUDENT_COUNT_MAX", 50)
	v.SetDefault("SEED_ATTENDANCE_DAYS", 365)
	v.SetDefault("SEED_MAX_TEACHER_LOAD", 6)

	v.SetDefault("SESSION_TTL", "12h")

	v.SetDefault("GENAI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("GENAI_MODEL", "gemini-2.0-flash")
	v.SetDefault("GENAI_API_KEY", "")
	v.SetDefault("GENAI_TIMEOUT", "15s")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
