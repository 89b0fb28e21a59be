package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgallion1/booksum/internal/api"
	"github.com/dgallion1/booksum/internal/config"
	"github.com/dgallion1/booksum/internal/pipeline"
	"github.com/dgallion1/booksum/internal/report"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default PORT)")
}

func runServe() error {
	log := newLogger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}
	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}
	orch := pipeline.NewOrchestrator(cfg, client, report.NewRenderer(log), log)
	srv := api.NewServer(orch, client, log, cfg)

	httpServer := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     srv,
		ReadTimeout: 60 * time.Second,
		// One request summarizes a whole book.
		WriteTimeout: 30 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		client.Close()
	}()

	log.Info("starting booksum", "port", cfg.Port, "provider", cfg.Provider, "model", client.Model())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
