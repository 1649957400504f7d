package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	portalcmd "github.com/tidemark/bluecarbon/internal/cmd/portal"
)

func main() {
	cfg, err := portalcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PORTAL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := portalcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
