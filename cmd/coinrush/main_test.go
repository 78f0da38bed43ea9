package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/coinrush/internal/config"
)

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coinrush.log")
	logger, closeLog, err := openLogger(path, "debug")
	if err != nil {
		t.Fatalf("openLogger() error = %v", err)
	}
	logger.Debug("item spawned", "type", "SLOW")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "coinrush") || !strings.Contains(out, "type=SLOW") {
		t.Errorf("log file = %q", out)
	}
}

func TestOpenLoggerErrors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		level string
	}{
		{"bad level", "", "loud"},
		{"missing directory", filepath.Join(t.TempDir(), "nope", "x.log"), "info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := openLogger(tt.path, tt.level); err == nil {
				t.Error("openLogger() succeeded")
			}
		})
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	if err := configCmd.RunE(configCmd, nil); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("printed config does not parse: %v", err)
	}
	if cfg.Player.Lives != 3 {
		t.Errorf("lives = %d, want 3", cfg.Player.Lives)
	}
}

func TestProfilesCommand(t *testing.T) {
	var buf bytes.Buffer
	profilesCmd.SetOut(&buf)
	flagConfig = ""
	if err := runProfiles(profilesCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "NORMAL") {
		t.Errorf("profiles output missing NORMAL:\n%s", buf.String())
	}
}
