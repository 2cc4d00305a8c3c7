package config

import "os"

type Config struct {
	Port             string
	Env              string
	PostgresConnStr  string
	RedisAddr        string
	JWTSecret        string
	MetricsPort      string
	PaymentKeySecret string
	AIServiceURL     string
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		PostgresConnStr:  getEnv("POSTGRES_CONN_STR", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		JWTSecret:        getEnv("JWT_SECRET", "supersecretjwtkey"),
		MetricsPort:      getEnv("METRICS_PORT", "9090"),
		PaymentKeySecret: getEnv("PAYMENT_KEY_SECRET", ""),
		AIServiceURL:     getEnv("AI_SERVICE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
