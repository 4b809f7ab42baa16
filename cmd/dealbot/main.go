package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/shopsavvy/dealbot/app"
	"github.com/shopsavvy/dealbot/core/buildinfo"
	"github.com/shopsavvy/dealbot/core/cmd"
	"github.com/shopsavvy/dealbot/core/logger"
)

func main() {
	// Local development reads secrets from .env; in production the
	// variables come from the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded .env")
	}

	err := cmd.Run(cmd.Options{
		ConfigEnvVar:      "CONFIG_PATH",
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (cmd.ConfigCarrier, error) {
			return app.LoadConfig(path)
		},
		Bootstrap: func(carrier cmd.ConfigCarrier) (cmd.TelegramApp, error) {
			cfg, ok := carrier.(*app.Config)
			if !ok {
				return nil, fmt.Errorf("unexpected config type %T", carrier)
			}
			application, err := app.Bootstrap(cfg)
			if err != nil {
				return nil, err
			}
			logger.L.With("component", "app").Info("dealbot starting",
				slog.String("event", "boot"),
				slog.String("version", buildinfo.Version),
				slog.String("commit", buildinfo.Commit),
			)
			return application, nil
		},
	})
	if err != nil {
		log.Fatalf("dealbot: %v", err)
	}
}
