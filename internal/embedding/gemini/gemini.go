// Package gemini implements the embedding backend on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/internhub/match-engine/internal/embedding"
	"github.com/internhub/match-engine/internal/logger"
)

const defaultModel = "gemini-embedding-001"

// Embedder requests text embeddings from the Gemini API and returns them as
// unit vectors.
type Embedder struct {
	client    *genai.Client
	modelName string
	logger    *zap.Logger
}

// New creates an Embedder configured for the Gemini API backend.
func New(ctx context.Context, apiKey, model string, log *zap.Logger) (*Embedder, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Embedder{
		client:    client,
		modelName: model,
		logger:    logger.WithCommonFields(log, "gemini", model),
	}, nil
}

// Embed returns the L2-normalized embedding vector for the text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if e == nil || e.client == nil {
		return nil, errors.New("gemini embedder is not initialized")
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text must not be empty")
	}

	resp, err := e.client.Models.EmbedContent(ctx, e.modelName, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}

	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("gemini api returned empty embedding")
	}

	values := resp.Embeddings[0].Values
	vector := make([]float64, len(values))
	for i, v := range values {
		vector[i] = float64(v)
	}

	e.logger.Debug("embedded text",
		zap.Int("text_length", len(text)),
		zap.Int("dimensions", len(vector)),
	)

	return embedding.L2Normalize(vector), nil
}

// Model reports the configured embedding model name.
func (e *Embedder) Model() string {
	if e == nil {
		return ""
	}
	return e.modelName
}
