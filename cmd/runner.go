package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nova/internal/catalog"
	"github.com/desertthunder/nova/internal/playlist"
	"github.com/desertthunder/nova/internal/repositories"
	"github.com/desertthunder/nova/internal/services"
	"github.com/desertthunder/nova/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	catalog *catalog.Catalog
	ask     *services.AskService
	asker   services.Asker
	player  playlist.Player
	logger  *log.Logger
	output  io.Writer
	opts    RunnerOpts
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Catalog *catalog.Catalog     // Preloaded catalog; loaded from config on first use when nil
	Ask     *services.AskService // Answer service client; built from [shared.ChatConfig] when nil
	Asker   services.Asker       // Overrides Ask for one-shot questions and the TUI
	Player  playlist.Player
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		config:  opts.Config,
		catalog: opts.Catalog,
		logger:  opts.Logger,
		output:  opts.Output,
		opts:    opts,
	}
	r.setServices(opts.Ask, opts.Asker, opts.Player)
	return r
}

// setServices builds whatever was not injected from the current config.
func (r *Runner) setServices(ask *services.AskService, asker services.Asker, player playlist.Player) {
	if ask == nil {
		ask = services.NewAskServiceFromConfig(r.config.Chat)
	}
	if asker == nil {
		asker = ask
	}
	if player == nil {
		player = playlist.NewExecPlayer(r.config.Player, shared.WithLogger(r.logger, "component", "player"))
	}
	r.ask, r.asker, r.player = ask, asker, player
}

// SetLogger replaces the logger used by the runner and the player built from config.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	if _, ok := r.player.(*playlist.ExecPlayer); ok {
		r.player = playlist.NewExecPlayer(r.config.Player, shared.WithLogger(l, "component", "player"))
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		tuiCommand, serveCommand, askCommand, catalogCommand, apiCommand, setupCommand,
	} {
		cmd := fn(r)
		r.loadConfigBefore(cmd)
		commands = append(commands, cmd)
	}

	return commands
}

// loadConfigBefore hooks loadConfig into every leaf command so --config is parsed wherever it appears.
func (r *Runner) loadConfigBefore(cmd *cli.Command) {
	if len(cmd.Commands) == 0 {
		cmd.Before = r.loadConfig
		return
	}
	for _, sub := range cmd.Commands {
		r.loadConfigBefore(sub)
	}
}

// loadConfig reads the --config file when it exists. A missing file keeps the current config.
func (r *Runner) loadConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if path == "" {
		return ctx, nil
	}

	if _, err := os.Stat(path); err != nil {
		if cmd.IsSet("config") {
			r.logger.Warn("config file not found, using defaults", "path", path)
		}
		return ctx, nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return ctx, err
	}

	r.config = config
	shared.SetLogLevel(r.logger, config.Log.Level)
	r.setServices(r.opts.Ask, r.opts.Asker, r.opts.Player)
	return ctx, nil
}

// loadCatalog returns the catalog named by [shared.CatalogConfig], loading it once.
func (r *Runner) loadCatalog() (*catalog.Catalog, error) {
	if r.catalog != nil {
		return r.catalog, nil
	}

	var (
		cat *catalog.Catalog
		err error
	)
	switch r.config.Catalog.Source {
	case shared.CatalogFile:
		cat, err = catalog.LoadFile(r.config.Catalog.Path)
	case shared.CatalogSQLite:
		cat, err = r.loadStoredCatalog()
	default:
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s catalog: %w", r.config.Catalog.Source, err)
	}

	r.logger.Debug("catalog loaded", "source", r.config.Catalog.Source, "courses", cat.Len())
	r.catalog = cat
	return cat, nil
}

func (r *Runner) loadStoredCatalog() (*catalog.Catalog, error) {
	db, err := shared.OpenDatabase(r.config.Database)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	stored, err := repositories.NewCourseRepository(db).List(nil)
	if err != nil {
		return nil, err
	}
	return catalog.FromPointers(stored)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	return r.writePlain(format+"\n", args...)
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
