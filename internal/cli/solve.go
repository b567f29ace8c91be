package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/layout"
	"github.com/matzehuels/gridpath/pkg/render/nodelink"
	"github.com/matzehuels/gridpath/pkg/search"
	"github.com/matzehuels/gridpath/pkg/session"
)

const (
	formatText = "text" // layout alphabet with search marks
	formatDOT  = "dot"  // Graphviz source
	formatSVG  = "svg"  // Graphviz-rendered diagram
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatText: true, formatDOT: true, formatSVG: true}

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	format   string
	output   string // output file; stdout when empty
	detailed bool   // add distances to diagram labels
	quiet    bool   // skip the summary table
}

// solveCommand creates the solve command, a headless run over a layout file.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "solve [layout]",
		Short: "Run the search on a layout file and print the result",
		Long: `Run the search on a layout file without a terminal UI.

The layout uses '.' for free cells, '#' for obstacles, 'S' for the start
and 'E' for the end. Use "-" to read it from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runSolve(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show distances in diagram labels (dot, svg)")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the summary table")

	return cmd
}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'text', 'dot', or 'svg')", f)
	}
	return nil
}

func (c *CLI) runSolve(ctx context.Context, path string, opts *solveOpts) error {
	logger := loggerFromContext(ctx)

	l, err := readLayout(path)
	if err != nil {
		return err
	}
	s, err := l.Load(ctx, session.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("layout loaded", "path", path, "size", l.Size, "obstacles", len(l.Obstacles))
	if s.State() != session.Ready {
		return errors.New(errors.ErrCodeInvalidLayout, "layout %s needs both a start (S) and an end (E)", path)
	}

	prog := newProgress(logger)
	res, err := s.Run(ctx, nil)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Solved %dx%d board", l.Size, l.Size))

	data, err := encode(ctx, s, res, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return err
		}
		printSuccess("Wrote %s output", opts.format)
		printFile(opts.output)
	}

	// Keep stdout clean when it carries a diagram.
	if opts.quiet || (opts.output == "" && opts.format != formatText) {
		return nil
	}
	printNewline()
	fmt.Println(summaryTable(res, s.Grid().Census()))
	if res.Found {
		printSuccess("Shortest path: %d moves", res.Distance)
	} else {
		printWarning("No path: the end is unreachable")
	}
	if path != "-" {
		printNextStep("Watch it animate", fmt.Sprintf("%s play --layout %s", appName, path))
	}
	return nil
}

func readLayout(path string) (*layout.Layout, error) {
	if path == "-" {
		return layout.Read(os.Stdin)
	}
	return layout.Import(path)
}

// encode renders the solved board in the requested format.
func encode(ctx context.Context, s *session.Session, res search.Result, opts *solveOpts) ([]byte, error) {
	switch opts.format {
	case formatDOT:
		return []byte(nodelink.ToDOT(s.Grid(), res.Path, nodelink.Options{Detailed: opts.detailed})), nil
	case formatSVG:
		dot := nodelink.ToDOT(s.Grid(), res.Path, nodelink.Options{Detailed: opts.detailed})
		spin := startSpinner(ctx, os.Stderr, "Rendering diagram...")
		defer spin.stop()
		return nodelink.RenderSVG(ctx, dot)
	default:
		return []byte(layout.Format(s.Grid())), nil
	}
}
