package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/avlasov/marketlens/internal/observability"
	"github.com/avlasov/marketlens/pkg/catalog"
)

var serveFlags struct {
	addr string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the metrics endpoint and dataset watcher",
	Long: `Run a long-lived process exposing Prometheus metrics. With
watch_datasets enabled in the configuration, the seed datasets are reloaded
when their files change on disk.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "127.0.0.1:9180", "listen address for the metrics endpoint")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if a.cfg.WatchDatasets {
		watcher, err := catalog.NewWatcher(a.log.GetZerolog(), func() {
			cat, err := catalog.NewLoader(a.cfg.DataDir, a.log.GetZerolog()).Load()
			if err != nil {
				a.log.Error().Err(err).Msg("Dataset reload failed, keeping previous catalog")
				return
			}
			a.catalog = cat
			observability.IncCatalogReload()
		})
		if err != nil {
			return fmt.Errorf("failed to start dataset watcher: %w", err)
		}
		if err := watcher.Watch(a.cfg.DataDir); err != nil {
			return fmt.Errorf("failed to watch data directory: %w", err)
		}
		defer watcher.Stop()

		a.log.Info().Str("dir", a.cfg.DataDir).Msg("Watching datasets for changes")
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())

	server := &http.Server{
		Addr:         serveFlags.addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info().Str("addr", serveFlags.addr).Msg("Metrics endpoint listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		a.log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
