package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/msto63/debugger/pkg/core/debugger"
	"github.com/msto63/debugger/pkg/core/debugger/debuggertest"
)

func TestRenderMatrix(t *testing.T) {
	out := renderMatrix()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// header, rule, one row per level
	if len(lines) != 2+len(debugger.AllLevels()) {
		t.Fatalf("matrix has %d lines:\n%s", len(lines), out)
	}
	for _, name := range []string{"THRESHOLD", "Log", "LogWarning", "LogError", "LogException"} {
		if !strings.Contains(lines[0], name) {
			t.Errorf("header missing %s: %q", name, lines[0])
		}
	}

	for i, level := range debugger.AllLevels() {
		row := lines[2+i]
		if !strings.Contains(row, level.String()) {
			t.Errorf("row %d missing %s: %q", i, level, row)
		}
		if got, want := strings.Count(row, "yes"), int(level); got != want {
			t.Errorf("%s row passes %d calls, want %d", level, got, want)
		}
	}
}

func TestEmit(t *testing.T) {
	tests := []struct {
		severity string
		want     debugger.LogLevel
	}{
		{"info", debugger.Info},
		{"log", debugger.Info},
		{"warning", debugger.Warning},
		{"error", debugger.Error},
		{"exception", debugger.Exception},
		{"null", debugger.Error},
	}

	for _, tt := range tests {
		t.Run(tt.severity, func(t *testing.T) {
			rec := debuggertest.NewRecorder()
			d := debugger.New(debugger.WithEnabled(true), debugger.WithSink(rec))
			ctx := debugger.NewHandle("Player", "Transform")

			if err := emit(d, tt.severity, "hello", ctx); err != nil {
				t.Fatalf("emit() error = %v", err)
			}
			entries := rec.Entries()
			if len(entries) != 1 {
				t.Fatalf("emissions = %d, want 1", len(entries))
			}
			if entries[0].Level != tt.want {
				t.Errorf("level = %v, want %v", entries[0].Level, tt.want)
			}
			if !strings.Contains(entries[0].Message, "hello") {
				t.Errorf("message = %q", entries[0].Message)
			}
			if entries[0].Context != debugger.Object(ctx) {
				t.Errorf("context = %v, want Player", entries[0].Context)
			}
		})
	}
}

func TestEmit_Assert(t *testing.T) {
	d := debugger.New(debugger.WithEnabled(true), debugger.WithSink(debuggertest.NewRecorder()))
	err := emit(d, "assert", "broken", nil)
	if !debugger.IsAssertionError(err) || err.Error() != "broken" {
		t.Errorf("emit(assert) = %v, want assertion error", err)
	}

	d.SetEnabled(false)
	if err := emit(d, "assert", "broken", nil); err != nil {
		t.Errorf("emit(assert) while disabled = %v", err)
	}
}

func TestEmit_UnknownSeverity(t *testing.T) {
	d := debugger.New(debugger.WithEnabled(true), debugger.WithSink(debuggertest.NewRecorder()))
	if err := emit(d, "shout", "x", nil); err == nil {
		t.Error("emit() should reject an unknown severity")
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)

	if !strings.Contains(buf.String(), "debugger v"+Version) {
		t.Errorf("version output = %q", buf.String())
	}
}

// runRoot executes the root command with args and stdin, returning stdout
func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		cfgFile = ""
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestWatchCommand(t *testing.T) {
	t.Setenv("DEBUGGER_ENABLED", "true")
	t.Setenv("DEBUGGER_LEVEL", "info")
	path := filepath.Join(t.TempDir(), "debugger.toml")
	content := "enabled = true\n\n[console]\noutput = \"stdout\"\nno_color = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := runRoot(t, "a\nb\n", "watch", "--config", path)
	if err != nil {
		t.Fatalf("watch error = %v", err)
	}
	if want := "INF a\nINF b\n"; out != want {
		t.Errorf("watch output = %q, want %q", out, want)
	}
}

func TestWatchCommand_NeedsSettingsFile(t *testing.T) {
	t.Setenv("DEBUGGER_CONFIG", "")
	t.Setenv("HOME", t.TempDir())
	cfgFile = ""

	_, err := runRoot(t, "", "watch")
	if err == nil || !strings.Contains(err.Error(), "needs a settings file") {
		t.Errorf("watch error = %v, want missing settings file", err)
	}
}
