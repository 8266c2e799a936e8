package embedding

import (
	"context"

	"go.uber.org/zap"
)

// Estimator scores how semantically close two text blocks are, using
// whatever embedder its provider yields.
type Estimator struct {
	provider Provider
	logger   *zap.Logger
}

// NewEstimator builds an estimator. Nil arguments degrade gracefully: a nil
// provider behaves as permanently unavailable.
func NewEstimator(provider Provider, logger *zap.Logger) *Estimator {
	if provider == nil {
		provider = Unavailable()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Estimator{provider: provider, logger: logger}
}

// Similarity returns the cosine similarity of the two texts. It never fails:
// an unavailable backend yields 0.0 for every call, and an embed error on
// either text yields 0.0 for this call only.
func (e *Estimator) Similarity(ctx context.Context, a, b string) float64 {
	embedder := e.provider.Embedder(ctx)
	if embedder == nil {
		return 0
	}

	va, err := embedder.Embed(ctx, a)
	if err != nil {
		e.logger.Debug("embedding failed, degrading similarity to 0.0", zap.Error(err))
		return 0
	}
	vb, err := embedder.Embed(ctx, b)
	if err != nil {
		e.logger.Debug("embedding failed, degrading similarity to 0.0", zap.Error(err))
		return 0
	}

	return Dot(va, vb)
}
