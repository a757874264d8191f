package gemini

import (
	"errors"
	"testing"

	"gemini-client/config"
	pkggemini "gemini-client/pkg/gemini"
	"gemini-client/pkg/log"
)

func TestConnect(t *testing.T) {
	_, err := Connect(config.GeminiConfig{}, log.NewNop(), nil)
	if !errors.Is(err, pkggemini.ErrMissingCredential) {
		t.Fatalf("got %v, want ErrMissingCredential", err)
	}

	first, err := Connect(config.GeminiConfig{APIKey: "k", Model: "gemini-1.5-flash"}, log.NewNop(), nil)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	second, err := Connect(config.GeminiConfig{APIKey: "other"}, log.NewNop(), nil)
	if err != nil {
		t.Fatalf("second Connect: %v", err)
	}
	if first != second {
		t.Error("Connect should return the same client")
	}
	if GetClient() != first {
		t.Error("GetClient should return the connected client")
	}
}
