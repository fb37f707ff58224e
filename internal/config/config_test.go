package config

import "testing"

func TestLoadEngineDefaults(t *testing.T) {
	t.Setenv("ENGINE_DAMPING", "")
	t.Setenv("ENGINE_TOLERANCE", "")
	t.Setenv("ENGINE_MAX_ITERATIONS", "")
	t.Setenv("ENGINE_KEY_POINT_COUNT", "")

	cfg := Load()
	if cfg.EngineDamping != 0.85 {
		t.Fatalf("expected default damping 0.85, got %v", cfg.EngineDamping)
	}
	if cfg.EngineTolerance != 1e-4 {
		t.Fatalf("expected default tolerance 1e-4, got %v", cfg.EngineTolerance)
	}
	if cfg.EngineMaxIterations != 100 {
		t.Fatalf("expected default max iterations 100, got %d", cfg.EngineMaxIterations)
	}
	if cfg.EngineKeyPointCount != 5 {
		t.Fatalf("expected default key point count 5, got %d", cfg.EngineKeyPointCount)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("ENGINE_DAMPING", "0.9")
	t.Setenv("ENGINE_MAX_ITERATIONS", "50")
	t.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	t.Setenv("RATE_LIMIT_RPS", "2.5")

	cfg := Load()
	if cfg.EngineDamping != 0.9 {
		t.Fatalf("expected damping 0.9, got %v", cfg.EngineDamping)
	}
	if cfg.EngineMaxIterations != 50 {
		t.Fatalf("expected max iterations 50, got %d", cfg.EngineMaxIterations)
	}
	if cfg.GeminiModel != "gemini-1.5-pro" {
		t.Fatalf("expected model override, got %q", cfg.GeminiModel)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Fatalf("expected rate limit 2.5, got %v", cfg.RateLimitRPS)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("ENGINE_DAMPING", "not-a-number")
	t.Setenv("ENGINE_MAX_ITERATIONS", "ten")

	cfg := Load()
	if cfg.EngineDamping != 0.85 {
		t.Fatalf("expected fallback damping, got %v", cfg.EngineDamping)
	}
	if cfg.EngineMaxIterations != 100 {
		t.Fatalf("expected fallback max iterations, got %d", cfg.EngineMaxIterations)
	}
}
