package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertthunder/nova/internal/server"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/desertthunder/nova/internal/web"
	"github.com/urfave/cli/v3"
)

// Serve runs the website until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	site, err := r.newSite()
	if err != nil {
		return err
	}

	cfg := r.config.Server
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = int(cmd.Int("port"))
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r.logger.Info("serving catalog", "addr", "http://"+cfg.Addr(), "answers", r.ask.API().BaseURL())
	if err := server.Serve(ctx, cfg.Addr(), site.Handler(), r.logger); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	r.logger.Info("server stopped")
	return nil
}

func (r *Runner) newSite() (*web.Site, error) {
	cat, err := r.loadCatalog()
	if err != nil {
		return nil, err
	}

	return web.NewSite(cat, r.ask, shared.WithLogger(r.logger, "component", "web"), web.Options{
		Greeting:        r.config.Chat.Greeting,
		ScrollThreshold: r.config.Chat.ScrollThreshold,
		AskRateLimit:    r.config.Chat.RateLimit,
		AskBurst:        r.config.Chat.RateBurst,
	})
}
