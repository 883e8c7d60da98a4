package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/olivier-w/folio/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feel.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  cell_size: 160\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "config", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("output is not a valid config: %v", err)
	}
	if cfg.Grid.CellSize != 160 {
		t.Fatalf("expected cell size 160, got %v", cfg.Grid.CellSize)
	}
	if cfg.Scroll.ItemHeight != config.Default().Scroll.ItemHeight {
		t.Fatal("expected untouched keys to keep their defaults")
	}
}

func TestConfigCommandRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feel.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  cell_sise: 160\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := execute(t, "config", "--config", path); err == nil {
		t.Fatal("expected an error for a misspelled key")
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	for _, name := range []string{"grid", "scroll", "picker"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name+".png")
			stdout, err := execute(t, "snapshot", "--screen", name, "--width", "320", "--height", "200",
				"--velocity", "2400", "--offset-y", "40", "--out", out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if strings.TrimSpace(stdout) != out {
				t.Fatalf("expected the output path, got %q", stdout)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()
			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("invalid PNG: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
				t.Fatalf("expected 320x200, got %v", b)
			}
		})
	}
}

func TestSnapshotRejectsUnknownScreen(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.png")
	if _, err := execute(t, "snapshot", "--screen", "carousel", "--out", out); err == nil {
		t.Fatal("expected an error for an unknown screen")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("expected no output file")
	}
}

func TestRootRejectsExtraArgs(t *testing.T) {
	if _, err := execute(t, "a", "b"); err == nil {
		t.Fatal("expected an error for two directories")
	}
}
