package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveRoot(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		name   string
		flag   string
		env    string
		config string
		want   string
	}{
		{"default", "", "", "", DefaultRoot},
		{"config file", "", "", "root: /from/config\n", "/from/config"},
		{"env beats config", "", "/from/env", "root: /from/config\n", "/from/env"},
		{"flag beats env", "/from/flag", "/from/env", "root: /from/config\n", "/from/flag"},
		{"tilde expanded", "~/books", "", "", filepath.Join(home, "books")},
		{"tilde in config", "", "", "root: ~/shelf\n", filepath.Join(home, "shelf")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfgHome := withConfigHome(t)
			t.Setenv(RootEnv, tt.env)
			if tt.config != "" {
				writeGlobalConfig(t, cfgHome, tt.config)
			}

			got, err := ResolveRoot(tt.flag)
			if err != nil {
				t.Fatalf("ResolveRoot() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveRoot(%q) = %q, want %q", tt.flag, got, tt.want)
			}
		})
	}
}

func TestResolveRoot_BadConfig(t *testing.T) {
	cfgHome := withConfigHome(t)
	t.Setenv(RootEnv, "")
	writeGlobalConfig(t, cfgHome, "root: [\n")

	if _, err := ResolveRoot(""); err == nil {
		t.Error("ResolveRoot() error = nil, want config error")
	}
	// A flag never consults the config file.
	if got, err := ResolveRoot("/explicit"); err != nil || got != "/explicit" {
		t.Errorf("ResolveRoot(/explicit) = (%q, %v)", got, err)
	}
}

func TestResolveLogLevel(t *testing.T) {
	cfgHome := withConfigHome(t)

	if got, _ := ResolveLogLevel(false); got != "info" {
		t.Errorf("ResolveLogLevel(false) = %q, want info", got)
	}
	if got, _ := ResolveLogLevel(true); got != "debug" {
		t.Errorf("ResolveLogLevel(true) = %q, want debug", got)
	}

	writeGlobalConfig(t, cfgHome, "log_level: error\n")
	ResetGlobalConfigCache()
	if got, _ := ResolveLogLevel(false); got != "error" {
		t.Errorf("ResolveLogLevel(false) = %q, want error", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~/books", filepath.Join(home, "books")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandPath(tt.input); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
