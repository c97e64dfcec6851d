package main

import (
	"log"
	"net/http"

	"go.uber.org/zap"

	"sitecheck/internal/checker"
	"sitecheck/internal/config"
	"sitecheck/internal/httpapi"
	"sitecheck/internal/logging"
	"sitecheck/internal/session"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	chk := checker.NewHTTPChecker(cfg.CheckTimeout)
	sess := session.New(chk)
	api := httpapi.NewServer(logger, sess)

	logger.Info("web_listen",
		zap.String("addr", cfg.Addr),
		zap.Duration("check_timeout", cfg.CheckTimeout),
	)
	if err := http.ListenAndServe(cfg.Addr, api.Router(cfg.RatePerMin, cfg.RateBurst)); err != nil {
		log.Fatal(err)
	}
}
