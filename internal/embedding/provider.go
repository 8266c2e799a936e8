package embedding

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// LazyProvider initializes its embedder on first use. The factory runs at
// most once even under concurrent first-use; when it fails, the provider is
// permanently unavailable for the rest of the process and never retries.
type LazyProvider struct {
	mu        sync.Mutex
	factory   Factory
	logger    *zap.Logger
	attempted bool
	embedder  Embedder
}

// NewLazyProvider wraps the factory. A nil logger is replaced with a no-op.
func NewLazyProvider(factory Factory, logger *zap.Logger) *LazyProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LazyProvider{factory: factory, logger: logger}
}

func (p *LazyProvider) Embedder(ctx context.Context) Embedder {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.attempted {
		p.attempted = true
		if p.factory == nil {
			return nil
		}
		embedder, err := p.factory(ctx)
		if err != nil {
			p.logger.Warn("embedding backend unavailable, semantic scores degrade to 0.0",
				zap.Error(err),
			)
			return nil
		}
		p.embedder = embedder
	}

	return p.embedder
}

type staticProvider struct {
	embedder Embedder
}

func (p staticProvider) Embedder(context.Context) Embedder { return p.embedder }

// Static returns a provider backed by an already-built embedder.
func Static(e Embedder) Provider {
	return staticProvider{embedder: e}
}

// Unavailable returns a provider that never yields an embedder.
func Unavailable() Provider {
	return staticProvider{}
}
