package layout

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/grid"
	"github.com/matzehuels/gridpath/pkg/session"
)

// Layout is a parsed board description.
type Layout struct {
	Size      int
	Start     *grid.Pos
	End       *grid.Pos
	Obstacles []grid.Pos
}

// Read parses a layout from r.
//
// Read returns an INVALID_LAYOUT error if the board is empty or not
// square, if a row contains an unknown character, if S or E appear more
// than once, if an end is given without a start, or if obstacles are
// given without both a start and an end. The size is checked with
// [errors.ValidateDimension]. Read does not close r.
func Read(r io.Reader) (*Layout, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "read layout")
	}
	if len(rows) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout is empty")
	}

	n := len(rows)
	if err := errors.ValidateDimension(n); err != nil {
		return nil, err
	}

	l := &Layout{Size: n}
	for row, line := range rows {
		if len(line) != n {
			return nil, errors.New(errors.ErrCodeInvalidLayout,
				"line %d has %d cells, want %d (layouts are square)", row+1, len(line), n)
		}
		for col, ch := range []byte(line) {
			p := grid.Pos{Row: row, Col: col}
			switch ch {
			case '.', 'o', 'x', '*':
			case '#':
				l.Obstacles = append(l.Obstacles, p)
			case 'S':
				if l.Start != nil {
					return nil, errors.New(errors.ErrCodeInvalidLayout, "second start at %s, first at %s", p, *l.Start)
				}
				l.Start = &p
			case 'E':
				if l.End != nil {
					return nil, errors.New(errors.ErrCodeInvalidLayout, "second end at %s, first at %s", p, *l.End)
				}
				l.End = &p
			default:
				return nil, errors.New(errors.ErrCodeInvalidLayout, "unknown cell %q at %s", ch, p)
			}
		}
	}

	if l.End != nil && l.Start == nil {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout has an end but no start")
	}
	if len(l.Obstacles) > 0 && (l.Start == nil || l.End == nil) {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "obstacles need both a start and an end")
	}
	return l, nil
}

// Import reads the layout file at path. A missing file is a FILE_NOT_FOUND
// error; everything else is reported as by [Read].
func Import(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "open layout %s", path)
	}
	defer f.Close()
	return Read(f)
}

// Apply replays the layout onto s, which must have the layout's size and
// be freshly created or cleared.
func (l *Layout) Apply(ctx context.Context, s *session.Session) error {
	if s.Dimension() != l.Size {
		return errors.New(errors.ErrCodeInvalidLayout,
			"layout is %dx%d but the board is %dx%d", l.Size, l.Size, s.Dimension(), s.Dimension())
	}
	if s.Start() != nil || s.End() != nil {
		return errors.New(errors.ErrCodePrecondition, "layouts can only be applied to an empty board")
	}

	press := func(p grid.Pos, want session.Action) error {
		act, err := s.Primary(ctx, p.Row, p.Col)
		if err != nil {
			return err
		}
		if act != want {
			return errors.New(errors.ErrCodeInvalidLayout, "cell %s: got %s, want %s", p, act, want)
		}
		return nil
	}

	if l.Start != nil {
		if err := press(*l.Start, session.PlacedStart); err != nil {
			return err
		}
	}
	if l.End != nil {
		if err := press(*l.End, session.PlacedEnd); err != nil {
			return err
		}
	}
	for _, p := range l.Obstacles {
		if err := press(p, session.PlacedObstacle); err != nil {
			return err
		}
	}
	return nil
}

// Load creates a session sized to the layout and applies it.
func (l *Layout) Load(ctx context.Context, opts ...session.Option) (*session.Session, error) {
	s, err := session.New(l.Size, opts...)
	if err != nil {
		return nil, err
	}
	if err := l.Apply(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
