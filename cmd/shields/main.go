// Package main is the entry point for the shields badge service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guswynn/shields/internal/server"
	githubadapter "github.com/guswynn/shields/pkg/adapters/github"
	"github.com/guswynn/shields/pkg/config"
	"github.com/guswynn/shields/pkg/logging"
	"github.com/guswynn/shields/pkg/pipenv"
	"github.com/guswynn/shields/pkg/service/dependencyversion"
	"github.com/guswynn/shields/pkg/service/pythonversion"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "shields",
		Short: "Badge service for Pipenv-managed GitHub projects",
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP badge server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd.Context(), configPath)
		},
	}
	cmd.AddCommand(serve)

	return cmd
}

func serveRun(ctx context.Context, configPath string) error {
	logging.Init()
	defer logging.Sync()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	client := githubadapter.New(cfg.GitHub.Token)
	fetcher := pipenv.NewFetcher(client)

	srv := server.New(
		pythonversion.New(fetcher),
		dependencyversion.New(fetcher),
	)

	httpSrv := &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.C(ctx).Info("listening", zap.String("address", cfg.Server.ListenAddress))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}
