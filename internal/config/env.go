package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Env struct {
	AppAddr string `mapstructure:"APP_ADDR"`
	GinMode string `mapstructure:"GIN_MODE"`
	AppEnv  string `mapstructure:"APP_ENV"`

	LogLevel string `mapstructure:"LOG_LEVEL"`

	FareUnitRate float64 `mapstructure:"FARE_UNIT_RATE"`
	SeatCount    int     `mapstructure:"SEAT_COUNT"`

	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RateLimitPerMin    int    `mapstructure:"RATE_LIMIT_PER_MIN"`

	// DBDSN enables the MySQL booking journal when set.
	DBDSN string `mapstructure:"DB_DSN"`

	LockBackend   string        `mapstructure:"LOCK_BACKEND"`
	LockTTL       time.Duration `mapstructure:"LOCK_TTL"`
	LockTimeout   time.Duration `mapstructure:"LOCK_TIMEOUT"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB"`

	TicketSecret string `mapstructure:"TICKET_SECRET"`
}

var envKeys = []string{
	"APP_ADDR", "GIN_MODE", "APP_ENV", "LOG_LEVEL", "FARE_UNIT_RATE", "SEAT_COUNT",
	"CORS_ALLOWED_ORIGINS", "RATE_LIMIT_PER_MIN", "DB_DSN", "LOCK_BACKEND", "LOCK_TTL",
	"LOCK_TIMEOUT", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "TICKET_SECRET",
}

// LoadEnv reads .env (optional), config.yaml (optional) and the process
// environment, in increasing priority.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}
	env, err := loadEnv(viper.New(), ".", "./config")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return env
}

func loadEnv(v *viper.Viper, paths ...string) (Env, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AutomaticEnv()
	// Unmarshal only sees env vars for keys viper already knows about.
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("APP_ADDR", ":5000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FARE_UNIT_RATE", 0.8)
	v.SetDefault("SEAT_COUNT", 40)
	v.SetDefault("RATE_LIMIT_PER_MIN", 300)
	v.SetDefault("LOCK_BACKEND", "local")
	v.SetDefault("LOCK_TTL", "10s")
	v.SetDefault("LOCK_TIMEOUT", "3s")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Env{}, err
		}
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return Env{}, err
	}
	env.AppAddr = strings.TrimSpace(env.AppAddr)
	env.GinMode = strings.TrimSpace(env.GinMode)
	env.LockBackend = strings.ToLower(strings.TrimSpace(env.LockBackend))
	if env.SeatCount <= 0 {
		env.SeatCount = 40
	}
	return env, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS. Empty means any origin.
func (e Env) AllowedOrigins() []string {
	out := []string{}
	for _, o := range strings.Split(e.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (e Env) IsProduction() bool {
	return strings.EqualFold(e.AppEnv, "production")
}
