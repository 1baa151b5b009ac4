package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port             string
	Env              string
	MongoURI         string
	MongoDB          string
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	ReceiverEmail    string
	AllowedOrigins   []string
	RedisAddr        string
	RateLimitPerMin  int
	SendDelay        time.Duration
	SMTPConnTimeout  time.Duration
	SMTPHelloTimeout time.Duration
	SMTPSendTimeout  time.Duration
}

func Load() Config {
	return Config{
		Port:             getenv("PORT", "3000"),
		Env:              getenv("APP_ENV", "development"),
		MongoURI:         getenv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:          getenv("MONGO_DB", "contact_db"),
		SMTPHost:         getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         atoi(getenv("SMTP_PORT", "465")),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPass:         os.Getenv("SMTP_PASS"),
		ReceiverEmail:    os.Getenv("RECEIVER_EMAIL"),
		AllowedOrigins:   split(getenv("ALLOWED_ORIGIN", "http://localhost:8080,http://localhost:3000")),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RateLimitPerMin:  atoi(getenv("RATE_LIMIT_PER_MIN", "10")),
		SendDelay:        millis(getenv("SEND_DELAY_MS", "1000")),
		SMTPConnTimeout:  millis(getenv("SMTP_CONNECT_TIMEOUT_MS", "10000")),
		SMTPHelloTimeout: millis(getenv("SMTP_GREETING_TIMEOUT_MS", "5000")),
		SMTPSendTimeout:  millis(getenv("SMTP_SEND_TIMEOUT_MS", "10000")),
	}
}

// Production gates verbose SMTP logging and stack traces in error responses.
func (c Config) Production() bool { return c.Env == "production" }

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func millis(s string) time.Duration {
	return time.Duration(atoi(s)) * time.Millisecond
}

func split(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
