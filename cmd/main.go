package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	application "veridian-datagen/cmd/datagen"
	"veridian-datagen/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = application.NewApp(cfg).Run(ctx)
	stop()
	if err != nil {
		log.Fatalf("datagen: %v", err)
	}
}
