package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/gridpath/pkg/errors"
	"github.com/matzehuels/gridpath/pkg/observability"
)

// execute runs the root command with args and a fresh CLI.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Cleanup(observability.Reset)

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	want := map[string]bool{"play": false, "solve": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("root command missing %q", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("root command missing --config")
	}
}

func TestSolveText(t *testing.T) {
	in := writeLayout(t, "S.#\n..#\n..E\n")
	out := filepath.Join(t.TempDir(), "solved.txt")

	if err := execute(t, "solve", in, "-o", out, "-q"); err != nil {
		t.Fatalf("solve error: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Sx#\n*x#\n**E\n"; string(got) != want {
		t.Errorf("solve output =\n%s\nwant\n%s", got, want)
	}
}

func TestSolveDOT(t *testing.T) {
	in := writeLayout(t, "S..\n.#.\n..E\n")
	out := filepath.Join(t.TempDir(), "solved.dot")

	if err := execute(t, "solve", in, "-f", "dot", "--detailed", "-o", out, "-q"); err != nil {
		t.Fatalf("solve error: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(got)
	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("output is not DOT:\n%s", dot)
	}
	if !strings.Contains(dot, `d=4`) {
		t.Error("detailed DOT should carry the end distance")
	}
}

func TestSolveUnreachable(t *testing.T) {
	in := writeLayout(t, "S.#\n.##\n##E\n")
	out := filepath.Join(t.TempDir(), "solved.txt")

	if err := execute(t, "solve", in, "-o", out, "-q"); err != nil {
		t.Fatalf("unreachable end should not fail: %v", err)
	}
	got, _ := os.ReadFile(out)
	if strings.Contains(string(got), "*") {
		t.Errorf("unreachable board has path cells:\n%s", got)
	}
}

func TestSolveErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad format", []string{"solve", writeLayout(t, "SE\n..\n"), "-f", "png"}, errors.ErrCodeInvalidFormat},
		{"no end", []string{"solve", writeLayout(t, "S.\n..\n")}, errors.ErrCodeInvalidLayout},
		{"bad layout", []string{"solve", writeLayout(t, "S.\n.\n")}, errors.ErrCodeInvalidLayout},
		{"missing file", []string{"solve", filepath.Join(dir, "missing.txt")}, errors.ErrCodeFileNotFound},
		{"missing config", []string{"--config", filepath.Join(dir, "missing.toml"), "solve", "x"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, f := range []string{"text", "dot", "svg"} {
		if err := validateFormat(f); err != nil {
			t.Errorf("validateFormat(%q) error: %v", f, err)
		}
	}
	if err := validateFormat("pdf"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateFormat(pdf) error = %v", err)
	}
}
