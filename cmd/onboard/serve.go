package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/voice-onboarding/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes answer validation, intent classification and
question prompts. Send SIGHUP to reload catalog files without a restart.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, PORT, or 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if servePort < 0 || servePort > 65535 {
		return fmt.Errorf("invalid --port %d", servePort)
	}

	engine, cfg, err := loadEngine()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	info := engine.Info()
	log.Printf("[serve] loaded %d catalogs from %d sources", len(info.Catalogs), len(info.Sources))

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		DefaultLocale: cfg.DefaultLocale,
		AllowedOrigin: cfg.AllowedOrigin,
	}, engine)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
