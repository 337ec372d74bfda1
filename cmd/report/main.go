package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"donation-service/configs"
	"donation-service/repositories"
)

func main() {
	all := flag.Bool("all", false, "List every donation instead of the most recent ones")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall deadline for the report queries")
	flag.Parse()

	if err := run(*all, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
}

func run(all bool, timeout time.Duration) error {
	cfg, err := configs.LoadConfig()
	if err != nil {
		return err
	}
	configs.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger := configs.LogWithContext("donation-report", "run")

	client, err := configs.ConnectDB(cfg.MongoURI, cfg.ConnectTimeout)
	if err != nil {
		return fmt.Errorf("mongodb connection failed: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	defer func() {
		if err := configs.DisconnectDB(context.Background(), client); err != nil {
			logger.WithError(err).Warn("Failed to close MongoDB connection")
		}
	}()

	repo := repositories.NewDonationRepository(configs.GetDatabase(client, cfg.MongoURI))
	report, err := buildReport(ctx, repo, all)
	if err != nil {
		return err
	}
	report.Render(os.Stdout)
	return nil
}
