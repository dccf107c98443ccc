package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m3rciful/furnibot/core/bootstrap"
	coreconfig "github.com/m3rciful/furnibot/core/config"
	"github.com/m3rciful/furnibot/internal/storage"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "catalogd.yaml"
	}

	cfg, err := storage.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("catalogd: config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	res, err := bootstrap.Run(ctx, bootstrap.Options{
		Config:   &coreconfig.Config{Logging: cfg.Logging},
		Database: cfg.Database,
		Seeders: []bootstrap.Seeder{
			bootstrap.SeederFunc(storage.SeedProducts),
		},
	})
	if err != nil {
		log.Fatalf("catalogd: bootstrap: %v", err)
	}
	defer res.DB.Close()

	repo := storage.NewProductRepo(res.DB)
	server := storage.NewServer(cfg.Server, repo, repo)

	if err := server.Run(ctx); err != nil {
		log.Fatalf("catalogd: server: %v", err)
	}
}
