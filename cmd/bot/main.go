package main

import (
	"log"

	corecmd "github.com/m3rciful/furnibot/core/cmd"
	"github.com/m3rciful/furnibot/internal/app"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig:        app.LoadConfig,
		Bootstrap:         app.Bootstrap,
	})
	if err != nil {
		log.Fatalf("furnibot: %v", err)
	}
}
