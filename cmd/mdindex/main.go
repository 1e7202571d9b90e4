package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/mdindex/internal/api"
	"github.com/dgallion1/mdindex/internal/config"
	"github.com/dgallion1/mdindex/internal/pipeline"
)

var rootCmd = &cobra.Command{
	Use:   "mdindex",
	Short: "Generate queryable JSON artifacts from a markdown document tree",
}

var generateCmd = &cobra.Command{
	Use:   "generate <source-dir> <dest-dir>",
	Short: "Parse a markdown tree and write the full artifact set",
	Args:  cobra.ExactArgs(2),
	RunE:  runGenerate,
}

var serveCmd = &cobra.Command{
	Use:   "serve <dest-dir>",
	Short: "Serve a generated artifact tree over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg := config.Load()
	cfg.SourceDir = args[0]
	cfg.DestDir = args[1]
	if err := cfg.Validate(); err != nil {
		return err
	}

	stats, err := pipeline.New(cfg, log).Run()
	if err != nil {
		log.Error("generation failed", "error", err)
		return err
	}
	log.Info("done",
		"documents", stats.Documents,
		"words", stats.Words,
		"code_examples", stats.CodeExamples,
		"artifacts", stats.Artifacts,
		"duration_ms", stats.Duration.Milliseconds(),
	)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg := config.Load()
	cfg.DestDir = args[0]
	if info, err := os.Stat(cfg.DestDir); err != nil || !info.IsDir() {
		return fmt.Errorf("artifact directory %s is not readable", cfg.DestDir)
	}

	srv := api.NewServer(cfg.DestDir, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting mdindex server", "port", cfg.Port, "dest", cfg.DestDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		return err
	}
	return nil
}
