package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/nova/internal/chat"
	"github.com/desertthunder/nova/internal/formatter"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/urfave/cli/v3"
)

// Ask sends the command arguments as one question and prints the answer.
func (r *Runner) Ask(ctx context.Context, cmd *cli.Command) error {
	query := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	r.logger.Debug("asking", "query", query)

	answer, err := r.asker.Ask(ctx, query)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(answer, true)
	}

	text := answer.Text
	if text == "" {
		text = chat.FallbackAnswer
	}
	if err := r.writePlainln("%s", formatter.RenderMarkdown(text, 80)); err != nil {
		return err
	}

	if len(answer.Sources) > 0 {
		r.writePlainln("\nSources:")
		for _, src := range answer.Sources {
			r.writePlainln("  - %s", src)
		}
	}
	return nil
}
