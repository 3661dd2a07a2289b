package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Veraticus/sideline/internal/common"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive app and blocks until the user quits or ctx is
// canceled. Pending transfer saves are flushed before it returns.
func Run(ctx context.Context, opts ...Option) error {
	return run(ctx, nil, nil, opts...)
}

func run(ctx context.Context, in io.Reader, out io.Writer, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Fetcher == nil {
		return fmt.Errorf("%w: sports API client is required", common.ErrMissingConfig)
	}

	m := newModel(ctx, cfg)

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if in != nil {
		programOpts = append(programOpts, tea.WithInput(in))
	}
	if out != nil {
		programOpts = append(programOpts, tea.WithOutput(out))
	}

	_, err := tea.NewProgram(m, programOpts...).Run()
	m.board.Wait()

	if cfg.Recorder != nil {
		cfg.Recorder.Close()
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
