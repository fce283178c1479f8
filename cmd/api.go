package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/nova/internal/shared"
	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
)

// APIGet makes a direct GET request to the answering service
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		path = "/"
	}

	r.logger.Info("GET request", "path", path)

	resp, err := r.ask.API().Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, !cmd.Bool("json"))
	}
	return r.writePlainln("%s", resp.Body)
}

// APIPost makes a direct POST request to the answering service
func (r *Runner) APIPost(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	data := cmd.String("data")

	if path == "" {
		path = r.ask.Path()
	}
	if data == "" {
		return fmt.Errorf("%w: --data flag is required", shared.ErrMissingArgument)
	}

	r.logger.Info("POST request", "path", path)

	if !json.Valid([]byte(data)) {
		return fmt.Errorf("%w: data is not valid JSON", shared.ErrInvalidInput)
	}

	resp, err := r.ask.API().Post(ctx, path, []byte(data))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		return fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(resp.Body))
	}

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, true)
	}
	return r.writePlainln("%s", resp.Body)
}

// APIPing reports whether the answering service is reachable.
func (r *Runner) APIPing(ctx context.Context, cmd *cli.Command) error {
	base := r.ask.API().BaseURL()
	if err := r.ask.API().Ping(ctx); err != nil {
		return fmt.Errorf("%s: %w", base, err)
	}
	return r.writePlainln("✓ %s is reachable", base)
}
