package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	APIPort  string
	LogLevel string
	JWTKey   []byte
	JWTExp   time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBConnStr  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JudgeBaseURL     string
	JudgeAPIHost     string
	JudgeAPIKey      string
	JudgeCPUTimeSec  string
	JudgeMemoryKb    int
	JudgeCooldown    time.Duration
	JudgeCooldownKey string

	CORSAllowedOrigins []string
	DefaultPageSize    int
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		APIPort:  getEnv("API_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		JWTKey:   []byte(getEnv("JWT_SECRET", "defaultsecret")),
		JWTExp:   time.Duration(getEnvAsInt("JWT_EXPIRATION_HOURS", 240)) * time.Hour,

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "user"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "codemore"),
		DBSslMode:  getEnv("DB_SSLMODE", "disable"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		JudgeBaseURL:     getEnv("JUDGE_BASE_URL", "https://judge0-ce.p.rapidapi.com"),
		JudgeAPIHost:     getEnv("JUDGE_API_HOST", "judge0-ce.p.rapidapi.com"),
		JudgeAPIKey:      getEnv("JUDGE_API_KEY", getEnv("RAPID_API_KEY", "")),
		JudgeCPUTimeSec:  getEnv("JUDGE_CPU_TIME_LIMIT", "2.0"),
		JudgeMemoryKb:    getEnvAsInt("JUDGE_MEMORY_LIMIT_KB", 262144),
		JudgeCooldown:    time.Duration(getEnvAsInt("JUDGE_COOLDOWN_SECONDS", 60)) * time.Second,
		JudgeCooldownKey: getEnv("JUDGE_COOLDOWN_KEY", "judge:cooldown"),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		DefaultPageSize:    getEnvAsInt("DEFAULT_PAGE_SIZE", 50),
	}

	cfg.DBConnStr = getEnv("DATABASE_URL", "host="+cfg.DBHost+
		" port="+cfg.DBPort+
		" user="+cfg.DBUser+
		" password="+cfg.DBPassword+
		" dbname="+cfg.DBName+
		" sslmode="+cfg.DBSslMode)

	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
