package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/brogergvhs/komikat/internal/catalog"
	"github.com/brogergvhs/komikat/internal/config"
	"github.com/brogergvhs/komikat/internal/server"
	"github.com/brogergvhs/komikat/internal/ui"
	"github.com/brogergvhs/komikat/internal/util"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	flagListen      string
	flagBaseURL     string
	flagListingURL  string
	flagTimeout     int
	flagCacheErrors bool
	flagWarm        bool
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /home from a snapshot built on first request",
		RunE:  runServe,
	}

	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (e.g. :8080)")
	serveCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "homepage URL")
	serveCmd.Flags().StringVar(&flagListingURL, "listing-url", "", "secondary listing page URL")
	serveCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "fetch timeout in seconds")
	serveCmd.Flags().BoolVar(&flagCacheErrors, "cache-errors", false, "keep a failed build in the snapshot slot")
	serveCmd.Flags().BoolVar(&flagWarm, "warm", false, "build the snapshot before accepting requests")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, usedPath, err := config.LoadMerged(config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		BaseURL:      flagBaseURL,
		ListingURL:   flagListingURL,
		Listen:       flagListen,
		Timeout:      flagTimeout,
		CacheErrors:  flagCacheErrors,
	})
	if err != nil {
		return err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	logSvc.Infof("config: %s", usedPath)

	p, err := newPipeline(cfg, logSvc, nil)
	if err != nil {
		return err
	}

	cache := catalog.NewSnapshotCache(catalog.WithCacheErrors(cfg.CacheErrors))

	ctx, stop := util.InterruptContext(cmd.Context())
	defer stop()

	if flagWarm {
		if cat := cache.GetOrBuild(ctx, p.build); cat.Failed() {
			logSvc.Warnf("warm-up build failed: %v", cat.Err)
		}
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	h := server.NewHandler(cache, p.build, p.stats, logSvc)

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           server.NewRouter(h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logSvc.Infof("listening on %s", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logSvc.Infof("shutting down")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
