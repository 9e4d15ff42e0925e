// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/sablekunal/all-we-need/internal/content"
	"github.com/sablekunal/all-we-need/internal/enrich"
	"github.com/sablekunal/all-we-need/internal/github"
	"github.com/sablekunal/all-we-need/internal/leaderboard"
	"github.com/sablekunal/all-we-need/internal/mcpserver"
	"github.com/sablekunal/all-we-need/internal/output"
	"github.com/sablekunal/all-we-need/internal/server"
	"github.com/sablekunal/all-we-need/internal/site"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if app.buildDate == "" {
		app.buildDate = time.Now().UTC().Format("2006-01-02")
	}
	return app, nil
}

func newLogger(cfg *Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

func siteFromConfig(cfg *Config) site.Site {
	return site.Site{
		BaseURL:    cfg.Site.BaseURL,
		Title:      cfg.Site.Title,
		Tagline:    cfg.Site.Tagline,
		SourceRepo: cfg.Site.SourceRepo,
		Categories: cfg.Site.Categories,
	}
}

// Build generates the complete site into the configured output directory.
func Build(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := newLogger(cfg)

	logger.Info("Configuration loaded",
		slog.String("content_path", cfg.Paths.Content),
		slog.String("output_path", cfg.Paths.Output),
		slog.String("base_url", cfg.Site.BaseURL),
		slog.String("log_level", cfg.App.LogLevel.String()))

	return app.build(ctx, logger)
}

func (a *application) build(ctx context.Context, logger *slog.Logger) error {
	cfg := a.config
	start := time.Now()

	loader := content.NewLoader()
	projects, err := loader.Load(cfg.Paths.Content)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}
	logger.Info("content loaded", slog.Int("projects", len(projects)))

	doer := a.doer
	if doer == nil {
		doer = http.DefaultClient
	}

	if cfg.GitHub.CachePath != "" {
		cache, err := github.OpenCache(cfg.GitHub.CachePath, cfg.GitHub.CacheTTL())
		if err != nil {
			return fmt.Errorf("open response cache: %w", err)
		}
		defer cache.Close()
		doer = github.NewCachingDoer(doer, cache)
	}

	client := github.NewClient(doer, cfg.GitHub.APIURL, cfg.GitHub.Token, cfg.GitHub.Timeout())
	enricher := enrich.New(client, logger)

	for i := range projects {
		d := enricher.RepoDetails(ctx, projects[i].Link)
		projects[i].Contributors = d.Contributors
		projects[i].RepoPath = d.RepoPath
		projects[i].Logo = enrich.ResolveLogo(projects[i].Logo, d.OwnerAvatar, projects[i].Link)
	}

	owner, repo := cfg.Site.SourceRepoParts()
	stats := leaderboard.Fetch(ctx, client, owner, repo, logger)

	ds := site.NewDataset(projects, stats)

	tmpl, err := site.LoadTemplates(cfg.Paths.Templates)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	out, err := output.NewFS(cfg.Paths.Output)
	if err != nil {
		return fmt.Errorf("init output: %w", err)
	}

	r := site.NewRenderer(siteFromConfig(cfg), tmpl, out, a.buildDate, logger)

	steps := []func() error{
		func() error { return r.WriteHome(ds) },
		func() error { return r.WriteProjectPages(ds.Projects) },
		func() error { return r.WriteProjectsIndex(ds) },
		func() error { return r.WriteLeaderboard(ds) },
		func() error { return r.WriteAbout(ds) },
		func() error { return r.WriteJSON(ds) },
		func() error { return r.WriteSitemap(ds.Projects) },
		func() error { return r.WriteLLMs(ds.Projects) },
		func() error { return r.CopyAssets(cfg.Paths.Templates, cfg.Paths.Assets, ".") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	logger.Info("site generated",
		slog.Int("projects", ds.Stats.Projects),
		slog.Int("contributors", ds.Stats.Contributors),
		slog.Int("merges", ds.Stats.Merges),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// Serve builds the site, then serves it locally with file watching and
// SSE-driven live reload until ctx is cancelled.
func Serve(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := newLogger(cfg)

	if err := app.build(ctx, logger); err != nil {
		return err
	}

	broker := server.NewBroker(500 * time.Millisecond)
	defer broker.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Mount("/", server.NewRouter(cfg.Paths.Output, broker))

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Rebuild on source changes and notify connected preview clients.
	g.Go(func() error {
		roots := []string{cfg.Paths.Content, cfg.Paths.Templates, cfg.Paths.Assets}
		return server.Watch(gCtx, roots, logger, func(ctx context.Context, path string) error {
			if err := app.build(ctx, logger); err != nil {
				return err
			}
			broker.NotifyRebuilt(path)
			return nil
		})
	})

	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}

// ServeMCP starts the catalogue MCP server on stdin/stdout.
func ServeMCP(opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}

	srv := mcpserver.New(app.config.Paths.Content, app.config.Paths.Output)
	return srv.ServeStdio()
}
