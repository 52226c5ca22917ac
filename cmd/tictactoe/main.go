package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	ttt "github.com/jaminalder/tictactoe/internal/cmd/tictactoe"
)

func main() {
	cfg, err := ttt.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[TICTACTOE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ttt.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil && ctx.Err() == nil {
		log.Fatalf("run: %v", err)
	}
}
