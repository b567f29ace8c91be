package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
	if cfg.Size != 40 || cfg.CellWidth != 2 || cfg.StepDelay.Duration != 15*time.Millisecond {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfigXDG(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFileName), []byte("size = 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Size != 12 || cfg.CellWidth != defaultCellWidth {
		t.Errorf("loadConfig() = %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
size = 25
cell_width = 3
step_delay = "250ms"
diagnostics = true
`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	want := Config{Size: 25, CellWidth: 3, StepDelay: duration{250 * time.Millisecond}, Diagnostics: true}
	if cfg != want {
		t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"bad toml", "size = ", errors.ErrCodeInvalidConfig},
		{"zero size", "size = 0", errors.ErrCodeInvalidConfig},
		{"huge size", "size = 1000", errors.ErrCodeInvalidConfig},
		{"wide cells", "cell_width = 20", errors.ErrCodeInvalidConfig},
		{"bad delay", `step_delay = "soon"`, errors.ErrCodeInvalidConfig},
		{"negative delay", `step_delay = "-1s"`, errors.ErrCodeInvalidConfig},
		{"unknown key", "colour = \"red\"", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("loadConfig() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestBoardFlagsOverride(t *testing.T) {
	var f boardFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--size", "7", "--delay", "0s"}); err != nil {
		t.Fatal(err)
	}

	base := Config{Size: 30, CellWidth: 4, StepDelay: duration{time.Second}}
	cfg, err := f.apply(cmd, base)
	if err != nil {
		t.Fatalf("apply() error: %v", err)
	}
	want := Config{Size: 7, CellWidth: 4, StepDelay: duration{0}}
	if cfg != want {
		t.Errorf("apply() = %+v, want %+v", cfg, want)
	}
}

func TestBoardFlagsInvalid(t *testing.T) {
	var f boardFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--cell-width", "0"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.apply(cmd, defaultConfig()); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("apply() error = %v, want INVALID_INPUT", err)
	}
}
