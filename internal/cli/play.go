package cli

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/pkg/layout"
	"github.com/matzehuels/gridpath/pkg/render/term"
	"github.com/matzehuels/gridpath/pkg/session"
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	board   boardFlags
	layout  string // optional initial board
	logFile string // where diagnostics go while the TUI owns the terminal
	glyphs  bool   // draw symbols instead of coloured blocks
}

// playCommand creates the play command, the interactive visualizer.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Edit a board with the mouse and animate the search",
		Long: `Open the interactive visualizer.

The first left click places the start, the second the end, further clicks
and drags paint obstacles. Right click erases a cell. Space or enter runs
the search, esc cancels it, c clears the board and q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.board.apply(cmd, c.config)
			if err != nil {
				return err
			}
			return c.runPlay(cmd.Context(), cfg, &opts)
		},
	}

	opts.board.register(cmd)
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", "", "start from a layout file")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write diagnostics to this file")
	cmd.Flags().BoolVar(&opts.glyphs, "glyphs", false, "draw layout symbols instead of colours")

	return cmd
}

func (c *CLI) runPlay(ctx context.Context, cfg Config, opts *playOpts) error {
	// The alternate screen owns the terminal; logs go to a file or nowhere.
	out := io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	c.Logger.SetOutput(out)
	defer c.Logger.SetOutput(c.logOut)

	s, err := c.newSession(ctx, cfg.Size, opts.layout)
	if err != nil {
		return err
	}

	r := term.New(cfg.CellWidth, term.WithGlyphs(opts.glyphs))
	model := NewPlayModel(ctx, s, r, cfg.StepDelay.Duration)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}

// newSession creates a session of the given size, or one sized and
// populated by the layout file when path is set.
func (c *CLI) newSession(ctx context.Context, size int, path string) (*session.Session, error) {
	if path == "" {
		return session.New(size, session.WithLogger(c.Logger))
	}
	l, err := layout.Import(path)
	if err != nil {
		return nil, err
	}
	return l.Load(ctx, session.WithLogger(c.Logger))
}
