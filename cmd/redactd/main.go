package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/redactkit/redactkit/config"
	"github.com/redactkit/redactkit/engines"
	"github.com/redactkit/redactkit/observability"
	"github.com/redactkit/redactkit/pipeline"
	"github.com/redactkit/redactkit/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "redactd: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to a YAML config file (optional)")
	warm := flag.Bool("warm", false, "Build the recognition engines before serving")
	flag.Parse()

	// Missing .env files are fine, real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log := observability.NewLineLogger(os.Stdout)
	pipe := pipeline.New(cfg, engines.NewManager(), log)
	if *warm {
		pipe.WarmUp()
	}

	srv := server.New(cfg, pipe, log)
	log.Info("listening", observability.String("addr", cfg.Addr))
	return srv.Run(cfg.Addr)
}
