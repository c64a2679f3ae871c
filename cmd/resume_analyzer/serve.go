package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extraction"
	"github.com/jonathan/resume-analyzer/internal/server"
	"github.com/jonathan/resume-analyzer/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume extraction over REST.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config or PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := serverConfig(cmd.Flags().Changed("port"), os.Getenv)

	extractor := extraction.New(
		extraction.WithLogger(logger),
		extraction.WithMaxInputBytes(settings.MaxInputBytes),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, extractor, logger).Start(ctx)
}

func serverConfig(portFlagSet bool, getenv func(string) string) server.Config {
	port := settings.Port
	if portFlagSet {
		port = servePort
	}
	return server.Config{
		Port:          port,
		MaxInputBytes: int64(settings.MaxInputBytes),
		RateLimit:     ratelimit.LoadConfig(getenv),
	}
}
