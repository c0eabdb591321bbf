package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexiusacademia/goifd/internal/config"
	"github.com/alexiusacademia/goifd/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveEnvFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the force diagrams over HTTP",
	Long: `Start an HTTP API that computes the force diagrams on request.

Routes:
  GET      /api/health
  GET      /api/limits?angle=65
  GET|POST /api/diagram?l1=204&angle=65&l3=234&samples=100
  GET      /api/diagram.{png,svg,pdf,csv,xlsx}

Settings come from the environment (GOIFD_ADDR, GOIFD_RATE, GOIFD_BURST,
GOIFD_SAMPLES, GOIFD_MAX_SAMPLES), optionally loaded from a .env file.

Examples:
  goifd serve
  goifd serve --addr :9090 --env production.env`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides GOIFD_ADDR")
	serveCmd.Flags().StringVar(&serveEnvFile, "env", ".env", "Environment file to load")
}

func runServe(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(serveEnvFile)
	if err != nil {
		return reportError(out, err, 0)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stderr, "goifd ", log.LstdFlags)
	if err := server.New(cfg, logger).ListenAndServe(ctx); err != nil {
		return reportError(out, err, 0)
	}
	logger.Println("Server stopped")
	return nil
}
