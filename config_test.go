package ybt

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	if v := DefaultConfig.Period; v != 2 {
		t.Errorf("expected default period 2, got %v", v)
	}
	if v := DefaultConfig.Rate; v != 30 {
		t.Errorf("expected default rate 30, got %v", v)
	}
	if v := DefaultConfig.Loops; v != 0 {
		t.Errorf("expected default loops 0, got %v", v)
	}
	if v := DefaultConfig.Format; v != "gif" {
		t.Errorf("expected default format gif, got %q", v)
	}
}

func TestLoadConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "ybt.yml")
	data := []byte(`
period: 5
loops: 3
format: png
matrices:
  swap:
    - [0, 1, 0]
    - [1, 0, 0]
    - [0, 0, 1]
`)
	if err := os.WriteFile(name, data, 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(name)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v := config.Period; v != 5 {
		t.Errorf("expected period 5, got %v", v)
	}
	if v := config.Rate; v != 30 {
		t.Errorf("expected the default rate to be kept, got %v", v)
	}
	if v := config.Loops; v != 3 {
		t.Errorf("expected loops 3, got %v", v)
	}
	if v := config.Format; v != "png" {
		t.Errorf("expected format png, got %q", v)
	}

	want := ColorMatrix{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}
	if m, ok := config.Matrices["swap"]; !ok || m != want {
		t.Errorf("expected matrix %#+v, got %#+v (ok=%v)", want, m, ok)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	name := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(name, []byte("period: [what"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(name); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestConfigMatrix(t *testing.T) {
	config := &Config{
		Matrices: map[string]ColorMatrix{
			"swap": {{0, 1, 0}, {1, 0, 0}, {0, 0, 1}},
			"yb":   {{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		},
	}

	t.Run("custom", func(it *testing.T) {
		m, ok := config.Matrix("swap")
		if !ok {
			it.Fatal("expected the custom matrix to resolve")
		}
		if m != config.Matrices["swap"] {
			it.Errorf("got %#+v", m)
		}
	})

	t.Run("custom-overrides-builtin", func(it *testing.T) {
		m, ok := config.Matrix("yb")
		if !ok {
			it.Fatal("expected the matrix to resolve")
		}
		if m == YellowBlue {
			it.Error("expected the custom matrix to win over the built-in")
		}
	})

	t.Run("builtin-fallthrough", func(it *testing.T) {
		m, ok := config.Matrix("rgyb")
		if !ok {
			it.Fatal("expected the built-in matrix to resolve")
		}
		if m != RedGreenToYellowBlue {
			it.Errorf("got %#+v", m)
		}
	})

	t.Run("unknown", func(it *testing.T) {
		if _, ok := config.Matrix("bogus"); ok {
			it.Error("expected an unknown name to fail")
		}
	})

	t.Run("nil-config", func(it *testing.T) {
		var config *Config
		m, ok := config.Matrix("yb")
		if !ok || m != YellowBlue {
			it.Errorf("expected the built-in matrix, got %#+v (ok=%v)", m, ok)
		}
	})
}
