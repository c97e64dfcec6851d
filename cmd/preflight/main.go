// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	logDir := strings.TrimSpace(os.Getenv("LOG_DIR"))
	timeoutMS := strings.TrimSpace(os.Getenv("HTTP_TIMEOUT_MS"))
	rpm := strings.TrimSpace(os.Getenv("RATE_RPM"))

	if addr == "" {
		warn("ADDR is empty; default 127.0.0.1:8080 will be used.")
	} else {
		ok("ADDR=" + addr)
	}

	if logDir == "" {
		warn("LOG_DIR empty — logs will go to ./logs.")
	} else if err := os.MkdirAll(logDir, 0o755); err != nil {
		fail("LOG_DIR not writable: " + err.Error())
	} else {
		ok("LOG_DIR=" + logDir)
	}

	if timeoutMS != "" {
		if ms, err := strconv.Atoi(timeoutMS); err != nil || ms <= 0 {
			fail("HTTP_TIMEOUT_MS must be a positive integer, got " + timeoutMS)
		} else {
			ok("HTTP_TIMEOUT_MS=" + timeoutMS)
		}
	} else {
		warn("HTTP_TIMEOUT_MS empty; default 5000 will be used.")
	}

	if rpm != "" {
		if n, err := strconv.Atoi(rpm); err != nil || n < 0 {
			fail("RATE_RPM must be a non-negative integer, got " + rpm)
		} else if n == 0 {
			warn("RATE_RPM=0 disables rate limiting.")
		} else {
			ok("RATE_RPM=" + rpm)
		}
	}

	ok("preflight passed")
}
