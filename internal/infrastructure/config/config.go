package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	minSecretLen   = 32
	minAPIKeyLen   = 32
	minPasswordLen = 8
)

// Config 儲存 HTTP API 及外部相依的執行設定。
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	DB        DBConfig        `yaml:"db"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Notify    NotifyConfig    `yaml:"notify"`
	Log       LogConfig       `yaml:"log"`
}

type HTTPConfig struct {
	Addr           string   `yaml:"addr"`
	Env            string   `yaml:"env"`
	FrontendOrigin string   `yaml:"frontend_origin"`
	TrustedProxies []string `yaml:"trusted_proxies"`
}

type DBConfig struct {
	DSN          string        `yaml:"dsn"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxIdleTime  time.Duration `yaml:"max_idle_time"`
}

// RedisConfig 啟用後，撤銷清單與限流計數會改存 Redis（跨實例共享）。
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AuthConfig struct {
	Secret        string        `yaml:"secret"`
	AdminPassword string        `yaml:"admin_password"`
	AdminAPIKey   string        `yaml:"admin_api_key"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	FailDelay     time.Duration `yaml:"fail_delay"`
}

type RateLimitConfig struct {
	API   WindowConfig `yaml:"api"`
	Login WindowConfig `yaml:"login"`
}

// WindowConfig 定義固定時間窗限流參數。
type WindowConfig struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

// NotifyConfig 設定後，新的聯絡訊息會推送到 Telegram。
type NotifyConfig struct {
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
	Prefix         string `yaml:"prefix"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// LoadFromFile 從 YAML 組態檔載入設定，環境變數優先。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.HTTP.Env == "" {
		cfg.HTTP.Env = EnvDevelopment
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 5
		if cfg.HTTP.Env == EnvProduction {
			cfg.DB.MaxOpenConns = 20
		}
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 2
	}
	if cfg.DB.MaxIdleTime == 0 {
		cfg.DB.MaxIdleTime = 15 * time.Minute
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 24 * time.Hour
	}
	if cfg.Auth.FailDelay == 0 {
		cfg.Auth.FailDelay = time.Second
	}
	if cfg.RateLimit.API.Max == 0 {
		cfg.RateLimit.API.Max = 100
	}
	if cfg.RateLimit.API.Window == 0 {
		cfg.RateLimit.API.Window = 15 * time.Minute
	}
	if cfg.RateLimit.Login.Max == 0 {
		cfg.RateLimit.Login.Max = 5
	}
	if cfg.RateLimit.Login.Window == 0 {
		cfg.RateLimit.Login.Window = 15 * time.Minute
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("HTTP_ADDR"); val != "" {
		cfg.HTTP.Addr = val
	}
	if val := os.Getenv("PORT"); val != "" {
		cfg.HTTP.Addr = ":" + val
	}
	if val := os.Getenv("APP_ENV"); val != "" {
		cfg.HTTP.Env = val
	}
	if val := os.Getenv("FRONTEND_ORIGIN"); val != "" {
		cfg.HTTP.FrontendOrigin = val
	}
	if val := os.Getenv("TRUSTED_PROXIES"); val != "" {
		cfg.HTTP.TrustedProxies = strings.Split(val, ",")
	}
	if val := os.Getenv("DB_DSN"); val != "" {
		cfg.DB.DSN = val
	}
	if val := os.Getenv("REDIS_ADDR"); val != "" {
		cfg.Redis.Addr = val
	}
	if val := os.Getenv("REDIS_PASSWORD"); val != "" {
		cfg.Redis.Password = val
	}
	if val := os.Getenv("REDIS_DB"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Redis.DB = n
		}
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		cfg.Auth.Secret = val
	}
	if val := os.Getenv("ADMIN_PASSWORD"); val != "" {
		cfg.Auth.AdminPassword = val
	}
	if val := os.Getenv("ADMIN_API_KEY"); val != "" {
		cfg.Auth.AdminAPIKey = val
	}
	if val := os.Getenv("TOKEN_TTL"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Auth.TokenTTL = d
		}
	}
	if val := os.Getenv("TELEGRAM_BOT_TOKEN"); val != "" {
		cfg.Notify.TelegramToken = val
	}
	if val := os.Getenv("TELEGRAM_CHAT_ID"); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			cfg.Notify.TelegramChatID = n
		}
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("LOG_PRETTY"); val != "" {
		cfg.Log.Pretty = (val == "true")
	}
	return cfg
}

// IsProduction 回傳是否為正式環境。
func (c Config) IsProduction() bool {
	return c.HTTP.Env == EnvProduction
}

// Validate 檢查必要密鑰是否存在且長度足夠；不合格時啟動流程應直接終止。
func (c Config) Validate() error {
	var problems []string
	if len(c.Auth.Secret) < minSecretLen {
		problems = append(problems, fmt.Sprintf("auth.secret must be at least %d characters", minSecretLen))
	}
	if len(c.Auth.AdminAPIKey) < minAPIKeyLen {
		problems = append(problems, fmt.Sprintf("auth.admin_api_key must be at least %d characters", minAPIKeyLen))
	}
	if len(c.Auth.AdminPassword) < minPasswordLen {
		problems = append(problems, fmt.Sprintf("auth.admin_password must be at least %d characters", minPasswordLen))
	}
	if c.IsProduction() && c.HTTP.FrontendOrigin == "" {
		problems = append(problems, "http.frontend_origin is required in production")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
