package playlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/nova/internal/models"
	"github.com/desertthunder/nova/internal/shared"
)

// Player starts playback of a single video.
type Player interface {
	Play(ctx context.Context, video models.Video) (Session, error)
}

// Session is one running playback.
type Session interface {
	// Wait blocks until playback stops. A nil error means the video reached its natural end.
	Wait() error
	// Stop interrupts playback. Wait then returns a non-nil error.
	Stop() error
}

// ExecPlayer plays videos with an external media player such as mpv, passing the video URL as the last argument.
type ExecPlayer struct {
	command  string
	args     []string
	logger   *log.Logger
	lookPath func(string) (string, error)
}

// NewExecPlayer creates a player for command. An empty command yields a [NopPlayer].
func NewExecPlayer(cfg shared.PlayerConfig, logger *log.Logger) Player {
	if cfg.Command == "" {
		return NopPlayer{}
	}
	return &ExecPlayer{
		command:  cfg.Command,
		args:     cfg.Args,
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

// Play launches the player process for video.
func (p *ExecPlayer) Play(ctx context.Context, video models.Video) (Session, error) {
	if video.URL == "" {
		return nil, fmt.Errorf("%w: video %q has no url", shared.ErrInvalidInput, video.Title)
	}

	bin, err := p.lookPath(p.command)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlayerUnavailable, err)
	}

	args := append(append([]string{}, p.args...), video.URL)
	cmd := exec.CommandContext(ctx, bin, args...)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlayerUnavailable, err)
	}

	if p.logger != nil {
		p.logger.Debug("player started", "command", p.command, "video", video.Key(), "pid", cmd.Process.Pid)
	}
	return &execSession{cmd: cmd}, nil
}

type execSession struct {
	cmd     *exec.Cmd
	once    sync.Once
	stopped bool
	mu      sync.Mutex
	waitErr error
}

func (s *execSession) Wait() error {
	s.once.Do(func() { s.waitErr = s.cmd.Wait() })

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped && s.waitErr == nil {
		return context.Canceled
	}
	return s.waitErr
}

func (s *execSession) Stop() error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	if s.cmd.Process == nil {
		return nil
	}
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}

// NopPlayer is used when no media player is configured. Every call reports [shared.ErrPlayerUnavailable].
type NopPlayer struct{}

func (NopPlayer) Play(context.Context, models.Video) (Session, error) {
	return nil, shared.ErrPlayerUnavailable
}
