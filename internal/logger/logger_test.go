package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func resetLogger() {
	Init(Options{})
}

func TestInit_Levels(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		logged  []func(string, ...any)
		dropped []func(string, ...any)
	}{
		{
			name:    "default is info",
			opts:    Options{},
			logged:  []func(string, ...any){Info, Warn, Error},
			dropped: []func(string, ...any){Debug},
		},
		{
			name:    "debug enables everything",
			opts:    Options{Debug: true},
			logged:  []func(string, ...any){Debug, Info, Warn, Error},
			dropped: nil,
		},
		{
			name:    "quiet only errors",
			opts:    Options{Quiet: true},
			logged:  []func(string, ...any){Error},
			dropped: []func(string, ...any){Debug, Info, Warn},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.opts.Output = buf
			Init(tt.opts)
			defer resetLogger()

			for i, log := range tt.logged {
				buf.Reset()
				log("visible message")
				if !strings.Contains(buf.String(), "visible message") {
					t.Errorf("logged[%d]: message was dropped", i)
				}
			}
			for i, log := range tt.dropped {
				buf.Reset()
				log("hidden message")
				if buf.Len() != 0 {
					t.Errorf("dropped[%d]: message leaked: %q", i, buf.String())
				}
			}
		})
	}
}

func TestInit_JSONHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("converted", "source", "a.html")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "converted" {
		t.Errorf("expected msg 'converted', got %v", entry["msg"])
	}
	if entry["source"] != "a.html" {
		t.Errorf("expected source attribute, got %v", entry["source"])
	}
}

func TestInit_CustomLoggerWins(t *testing.T) {
	buf := &bytes.Buffer{}
	custom := slog.New(slog.NewTextHandler(buf, nil))

	// Logger overrides every other option, including Quiet.
	Init(Options{Quiet: true, Logger: custom})
	defer resetLogger()

	Info("through custom")
	if !strings.Contains(buf.String(), "through custom") {
		t.Error("custom logger should receive messages")
	}
}

func TestSetLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	defer resetLogger()

	Warn("swapped")
	if !strings.Contains(buf.String(), "swapped") {
		t.Error("SetLogger should replace the package logger")
	}
}

func TestWith(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	With("cleaner", "mdsift").Info("starting")

	out := buf.String()
	if !strings.Contains(out, "cleaner=mdsift") {
		t.Errorf("expected bound attribute in output, got %q", out)
	}
}
