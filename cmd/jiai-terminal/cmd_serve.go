package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ngmaloney/jiai-terminal/internal/server"
)

var serveAddr string

// serveCmd runs the JSON endpoint
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reports as JSON over HTTP",
	Long: `Starts an HTTP server with:
  GET /api/report?place=&date=&hour=&style=&simulate=
  GET /api/spots
  GET /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, JIAI_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	srv := server.New(a.builder, a.spots, cfg, logger.Named("server"))
	return srv.ListenAndServe(ctx, addr, cmd.ErrOrStderr())
}
