package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var httpAddress string

var serveHTTPCmd = &cobra.Command{
	Use:   "serve-http",
	Short: "Run the HTTP analysis API",
	Long: `Run an HTTP API for text analysis.

Routes:
  POST /api/analyze       - analyze the request body, returns an analysis ID
  GET  /api/analysis/{id} - fetch a stored analysis by ID`,
	RunE: runServeHTTP,
}

func init() {
	serveHTTPCmd.Flags().StringVar(&httpAddress, "address", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveHTTPCmd)
}

func runServeHTTP(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if httpAddress == "" {
		httpAddress = cfg.HTTPAddress
	}

	srv := &http.Server{
		Addr:    httpAddress,
		Handler: newHTTPHandler(NewStore(), cfg),
	}

	// Shut the server down cleanly on SIGINT/SIGTERM.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Printf("Received signal: %s. Shutting down HTTP server...", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Warning: HTTP server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting TextStat HTTP server on %s", httpAddress)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Println("HTTP server stopped.")
	return nil
}
