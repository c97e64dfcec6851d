package config

import (
	"os"
	"strconv"
	"time"

	"sitecheck/internal/checker"
)

type Config struct {
	Addr         string        // bind address, e.g., "127.0.0.1:8080"
	LogDir       string        // logs directory
	CheckTimeout time.Duration // per-check HTTP timeout
	RatePerMin   int           // requests per minute per client IP; 0 disables
	RateBurst    int           // rate limiter burst
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	checkTimeout := checker.DefaultTimeout
	if v := os.Getenv("HTTP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			checkTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	ratePerMin := 120
	if v := os.Getenv("RATE_RPM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			ratePerMin = n
		}
	}

	rateBurst := 60
	if v := os.Getenv("RATE_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			rateBurst = n
		}
	}

	return Config{
		Addr:         addr,
		LogDir:       logDir,
		CheckTimeout: checkTimeout,
		RatePerMin:   ratePerMin,
		RateBurst:    rateBurst,
	}
}
