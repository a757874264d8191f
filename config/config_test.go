package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	t.Run("env only", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("GEMINI_API_KEY", "env-key")
		t.Setenv("GEMINI_TEMPERATURE", "0.2")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Gemini.APIKey != "env-key" {
			t.Errorf("api key: got %q", cfg.Gemini.APIKey)
		}
		if cfg.Gemini.Temperature != 0.2 {
			t.Errorf("temperature: got %v", cfg.Gemini.Temperature)
		}
		if cfg.Gemini.Model != "gemini-1.5-flash" || cfg.Gemini.MaxOutputTokens != 8192 {
			t.Errorf("defaults: got %+v", cfg.Gemini)
		}
		if cfg.Gemini.SystemInstruction != "You are an assistant" {
			t.Errorf("instruction: got %q", cfg.Gemini.SystemInstruction)
		}
	})

	t.Run("yaml file", func(t *testing.T) {
		viper.Reset()
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("GEMINI_API_KEY", "")
		yaml := []byte(`
gemini:
  api_key: file-key
  model: gemini-2.0-flash
  system_instruction: You are Neko the cat, respond like one
  proxy_url: socks5://127.0.0.1:1080
logger:
  level: debug
`)
		if err := os.WriteFile(filepath.Join(dir, "gemini-config.yaml"), yaml, 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.Gemini.APIKey != "file-key" || cfg.Gemini.Model != "gemini-2.0-flash" {
			t.Errorf("gemini: got %+v", cfg.Gemini)
		}
		if cfg.Gemini.ProxyURL != "socks5://127.0.0.1:1080" {
			t.Errorf("proxy: got %q", cfg.Gemini.ProxyURL)
		}
		if cfg.Logger.Level != "debug" {
			t.Errorf("logger level: got %q", cfg.Logger.Level)
		}
	})

	t.Run("missing api key", func(t *testing.T) {
		viper.Reset()
		chdir(t, t.TempDir())
		t.Setenv("GEMINI_API_KEY", "")

		if _, err := Load(); err == nil {
			t.Fatal("expected error for missing api key")
		}
	})
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
