package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	plannercmd "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/cmd/planner"
)

// main starts the planner MCP server on stdio.
func main() {
	cfg, err := plannercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PLANNER] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := plannercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve planner: %v", err)
	}
}
