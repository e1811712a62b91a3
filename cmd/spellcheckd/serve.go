package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	spellcheck "github.com/kepka-app/lib-spellcheck"
	"github.com/kepka-app/lib-spellcheck/internal/config"
	"github.com/kepka-app/lib-spellcheck/internal/httpx"
	"github.com/kepka-app/lib-spellcheck/internal/observability"
	"github.com/kepka-app/lib-spellcheck/internal/watcher"
)

var cfgPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local spell-check HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg config.Config
			err error
		)
		if cfgPath != "" {
			cfg, err = config.Load(cfgPath)
		} else {
			cfg, err = config.FromEnv()
		}
		if err != nil {
			return err
		}
		if workingDir != "." || cfg.WorkingDir == "" {
			cfg.WorkingDir = workingDir
		}
		if len(languages) > 0 {
			cfg.Languages = languages
		}

		log := observability.New(cfg.Log.Level)
		checker := spellcheck.New(spellcheck.Options{
			WorkingDir:     cfg.WorkingDir,
			MaxSuggestions: cfg.MaxSuggestions,
			Logger:         log.Component("service"),
		})
		defer checker.Close()
		checker.UpdateLanguageTags(cfg.Languages)

		if cfg.Watch {
			w := watcher.New(checker.Service(), cfg.WorkingDir, log.Component("watcher"))
			if err := w.Start(); err != nil {
				log.Warn("watcher unavailable", "error", err)
			} else {
				defer w.Stop()
			}
		}

		srv := &http.Server{
			Addr:         cfg.Listen,
			Handler:      httpx.NewRouter(checker, log),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}

		errc := make(chan error, 1)
		go func() {
			log.Info("listening", "addr", cfg.Listen, "languages", checker.ActiveLanguages())
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errc <- err
			}
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errc:
			return err
		case <-shutdown:
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(ctx)
		log.Info("stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to JSON config")
	rootCmd.AddCommand(serveCmd)
}
