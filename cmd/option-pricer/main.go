package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/contactkeval/option-pricer/internal/config"
	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/portfolio"
	"github.com/contactkeval/option-pricer/internal/report"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "portfolio.yaml"), "path to YAML/JSON/TOML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if err := logger.Init(cfg.Logger); err != nil {
		log.Fatalf("initialising logger: %v", err)
	}
	defer logger.Sync()

	policy, _ := cfg.Pricing.Policy() // validated by config.Load

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pricer := &portfolio.Pricer{
		Policy:  policy,
		Strict:  cfg.Pricing.StrictSelectors,
		Workers: cfg.Pricing.Workers,
	}
	logger.Infof("pricing %d contracts expiry_policy=%s strict=%t", len(cfg.Contracts), policy, pricer.Strict)

	start := time.Now()
	quotes, err := pricer.PriceAll(ctx, cfg.Contracts)
	if err != nil {
		logger.Errorf("pricing aborted: %v", err)
		os.Exit(1)
	}

	failed := 0
	for _, q := range quotes {
		if !q.OK() {
			failed++
		}
	}

	if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
		logger.Errorf("could not create report dir %s: %v", cfg.ReportDir, err)
		os.Exit(1)
	}
	if err := report.WriteJSON(quotes, cfg.ReportDir); err != nil {
		logger.Errorf("writing JSON report: %v", err)
	}
	if err := report.WriteCSV(quotes, cfg.ReportDir); err != nil {
		logger.Errorf("writing CSV report: %v", err)
	}
	logger.Infof("finished in %v, priced %d contracts (%d rejected), reports in %s",
		time.Since(start), len(quotes)-failed, failed, cfg.ReportDir)
}
