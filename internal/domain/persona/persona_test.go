package persona_test

import (
	"testing"

	"moneystocks/services/chat-api/internal/domain/persona"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		wantKey  string
		wantName string
	}{
		{name: "known key", key: "friendly_companion", wantKey: "friendly_companion", wantName: "Dina"},
		{name: "case insensitive", key: "Professional_Advisor", wantKey: "professional_advisor", wantName: "Sarah"},
		{name: "surrounding whitespace", key: "  wise_mentor ", wantKey: "wise_mentor", wantName: "Pak Arief"},
		{name: "unknown key defaults", key: "angry_mom", wantKey: "wise_mentor", wantName: "Pak Arief"},
		{name: "empty key defaults", key: "", wantKey: "wise_mentor", wantName: "Pak Arief"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := persona.Resolve(tt.key)
			if cfg.Key != tt.wantKey {
				t.Errorf("Resolve(%q).Key = %q, want %q", tt.key, cfg.Key, tt.wantKey)
			}
			if cfg.Name != tt.wantName {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.key, cfg.Name, tt.wantName)
			}
		})
	}
}

func TestResolveIsTotal(t *testing.T) {
	for _, key := range []string{"", "  ", "WISE_MENTOR", "unknown", "123", "persona-with-dashes"} {
		cfg := persona.Resolve(key)
		if cfg.SystemPrompt == "" || cfg.TextModel == "" || cfg.VisionModel == "" {
			t.Fatalf("Resolve(%q) returned an incomplete config: %+v", key, cfg)
		}
		if cfg.FallbackRecorded == "" || cfg.FallbackGeneric == "" {
			t.Fatalf("Resolve(%q) returned empty fallbacks", key)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	first := persona.Resolve("friendly_companion")
	second := persona.Resolve(first.Key)
	if first != second {
		t.Fatalf("Resolve is not idempotent: %+v != %+v", first, second)
	}
}

func TestFallbackVariants(t *testing.T) {
	cfg := persona.Resolve("wise_mentor")
	if cfg.Fallback(true) == cfg.Fallback(false) {
		t.Fatal("recorded and generic fallbacks should differ")
	}
	if cfg.Fallback(true) == "" || cfg.Fallback(false) == "" {
		t.Fatal("fallbacks must be non-empty")
	}
}

func TestModelSelection(t *testing.T) {
	cfg := persona.Resolve("friendly_companion")
	if cfg.Model(false) != cfg.TextModel {
		t.Errorf("text turn should use the text model")
	}
	if cfg.Model(true) != cfg.VisionModel {
		t.Errorf("image turn should use the vision model")
	}
}
