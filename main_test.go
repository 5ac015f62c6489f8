package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog/log"
)

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, ansi.Strip(out.String()), errOut.String()
}

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := body + "\n[log]\nfile = \"" + filepath.ToSlash(filepath.Join(dir, "movements.log")) + "\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}
	return path
}

func TestRun_Parse(t *testing.T) {
	code, out, errOut := runCLI(t, "parse",
		"-composer", "Beethoven", "-composer", "Mozart",
		"Beethoven: Für Elise",
		"Mozart: Eine kleine Nachtmusik - I. Allegro",
		"Mozart: Eine kleine Nachtmusik - II. Romanze",
	)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	for _, want := range []string{"Für Elise", "Eine kleine Nachtmusik", "II. Romanze", "2 works, 3 tracks, 1 new after mismatch"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_ParseWithoutTitles(t *testing.T) {
	code, _, errOut := runCLI(t, "parse")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "Failed to parse titles: no titles given") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	if code, _, _ := runCLI(t, "-nope"); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestRun_ScanWithoutSources(t *testing.T) {
	cfg := writeTestConfig(t, "")
	code, _, errOut := runCLI(t, "-config", cfg, "-db", filepath.Join(t.TempDir(), "m.db"), "scan")
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.Contains(errOut, "Failed to scan library: no library sources configured") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRun_ScanEmptyLibrary(t *testing.T) {
	music := t.TempDir()
	cfg := writeTestConfig(t, `library_sources = ["`+filepath.ToSlash(music)+`"]`)
	db := filepath.Join(t.TempDir(), "m.db")

	code, out, errOut := runCLI(t, "-config", cfg, "-db", db)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	if !strings.Contains(out, "0 albums, 0 works, 0 tracks") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat(db); err != nil {
		t.Errorf("database not created: %v", err)
	}
}

func TestRun_ConfigMissing(t *testing.T) {
	code, _, errOut := runCLI(t, "-config", filepath.Join(t.TempDir(), "missing.toml"))
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if !strings.HasPrefix(errOut, "Failed to load config") {
		t.Errorf("stderr = %q", errOut)
	}
}
