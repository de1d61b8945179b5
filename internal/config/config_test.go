package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port == 0 {
		t.Error("default server port not set")
	}
	if len(cfg.Export.Formats) == 0 {
		t.Error("default export formats empty")
	}
	if cfg.Defaults.BookType != "novel" {
		t.Errorf("default book type = %q", cfg.Defaults.BookType)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q", cfg.LogLevel)
	}
}

func TestResolveEnvVars(t *testing.T) {
	os.Setenv("BOOKPRESS_TEST_VALUE", "resolved")
	defer os.Unsetenv("BOOKPRESS_TEST_VALUE")

	cases := []struct {
		in   string
		want string
	}{
		{"${BOOKPRESS_TEST_VALUE}", "resolved"},
		{"prefix-${BOOKPRESS_TEST_VALUE}", "prefix-resolved"},
		{"no-vars", "no-vars"},
		{"", ""},
		{"${UNSET_VAR_XYZ}", ""},
	}
	for _, tc := range cases {
		if got := ResolveEnvVars(tc.in); got != tc.want {
			t.Errorf("ResolveEnvVars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "# Bookpress configuration") {
		t.Error("missing header comment")
	}
	if !strings.Contains(content, "book_type: novel") {
		t.Error("defaults missing from written config")
	}
}

func TestManagerLoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "server:\n  host: 0.0.0.0\n  port: 9000\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := cm.Get()
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Errorf("server config = %+v", cfg.Server)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	// File values merge over defaults rather than replacing them.
	if cfg.Defaults.BookType != "novel" {
		t.Errorf("defaults not merged: %+v", cfg.Defaults)
	}
}
