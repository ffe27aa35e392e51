package insight

import (
	"context"
	"fmt"

	"github.com/insure-planner/go-api-server/internal/config"
	"google.golang.org/genai"
)

// Generator produces free-form analysis text for a prompt. Implementations
// may fail; callers substitute fixed fallback text rather than propagating.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed generator. The API key must be
// non-empty; key-less deployments should not construct a generator at all
// and let the service answer with its fallback text.
func NewGeminiGenerator(ctx context.Context, cfg config.InsightConfig) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("insight: API 키가 필요합니다")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("insight: Gemini 클라이언트 생성 실패: %w", err)
	}

	return &GeminiGenerator{client: client, model: cfg.Model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("insight: Gemini 호출 실패: %w", err)
	}

	return resp.Text(), nil
}
