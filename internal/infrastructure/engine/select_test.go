package engine

import (
	"errors"
	"testing"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/extractive"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/gemini"
)

func TestSelectLocal(t *testing.T) {
	local := extractive.NewEngine(extractive.Config{})
	selector := NewSelector(local, gemini.Config{})

	engine, err := selector.Select(domain.ModeLocal, "")
	if err != nil {
		t.Fatalf("Select(local) error = %v", err)
	}
	if engine != local {
		t.Fatalf("expected the shared local engine")
	}

	// An empty mode falls back to local too.
	engine, err = selector.Select("", "ignored")
	if err != nil {
		t.Fatalf("Select(\"\") error = %v", err)
	}
	if engine != local {
		t.Fatalf("expected the shared local engine for empty mode")
	}
}

func TestSelectOnlineRequiresCredential(t *testing.T) {
	selector := NewSelector(extractive.NewEngine(extractive.Config{}), gemini.Config{})

	_, err := selector.Select(domain.ModeOnline, "")
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
}

func TestSelectOnlineUsesRequestCredential(t *testing.T) {
	selector := NewSelector(extractive.NewEngine(extractive.Config{}), gemini.Config{})

	engine, err := selector.Select(domain.ModeOnline, "request-key")
	if err != nil {
		t.Fatalf("Select(online) error = %v", err)
	}
	if engine == nil {
		t.Fatalf("expected an online engine")
	}
}

func TestSelectOnlineFallsBackToConfiguredCredential(t *testing.T) {
	selector := NewSelector(extractive.NewEngine(extractive.Config{}), gemini.Config{Credential: "configured"})

	if _, err := selector.Select(domain.ModeOnline, ""); err != nil {
		t.Fatalf("Select(online) with configured credential error = %v", err)
	}
}

func TestSelectUnknownMode(t *testing.T) {
	selector := NewSelector(extractive.NewEngine(extractive.Config{}), gemini.Config{})

	_, err := selector.Select("hybrid", "")
	if !errors.Is(err, domain.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}
