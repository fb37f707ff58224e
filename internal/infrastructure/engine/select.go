// Package engine wires the summarization strategies behind one selector.
package engine

import (
	"errors"

	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/domain"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/core/ports"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/extractive"
	"github.com/MaanyaGupta/Document-Text-summariser/internal/infrastructure/engine/gemini"
)

// Selector resolves the engine variant for a request. The local engine is
// shared and always available; the online engine is built per call around
// the caller-supplied credential.
type Selector struct {
	local     *extractive.Engine
	onlineCfg gemini.Config
}

func NewSelector(local *extractive.Engine, onlineCfg gemini.Config) *Selector {
	return &Selector{
		local:     local,
		onlineCfg: onlineCfg,
	}
}

func (s *Selector) Select(mode domain.EngineMode, credential string) (ports.SummaryEngine, error) {
	switch mode {
	case domain.ModeLocal, "":
		return s.local, nil
	case domain.ModeOnline:
		cfg := s.onlineCfg
		if credential != "" {
			cfg.Credential = credential
		}
		return gemini.New(cfg)
	default:
		return nil, domain.WrapError(domain.ErrUnknownMode, "select engine", errors.New(string(mode)))
	}
}
