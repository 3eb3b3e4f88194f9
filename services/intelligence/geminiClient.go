// Package intelligence produces short preparation tips for a booked
// service. Tips are generated with Gemini when an API key is
// configured and fall back to canned advice otherwise, so the booking
// flow never depends on the model being reachable.
package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitbook/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const generateTimeout = 8 * time.Second

// TipService returns a one-liner of advice for a service by name.
type TipService interface {
	AdviceFor(ctx context.Context, serviceName string) string
}

// GeminiTipService asks Gemini for the tip.
type GeminiTipService struct {
	model *genai.GenerativeModel
}

func NewGeminiTipService(ctx context.Context, apiKey string) (*GeminiTipService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiTipService{model: client.GenerativeModel("models/gemini-1.5-flash")}, nil
}

func (g *GeminiTipService) AdviceFor(ctx context.Context, serviceName string) string {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Give one short, practical tip (max 25 words) for someone preparing for a %s session. Plain text, no markdown.",
		serviceName,
	)
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		utils.GetLogger().Warn("gemini tip generation failed, using fallback", zap.Error(err))
		return fallbackTip(serviceName)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallbackTip(serviceName)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	tip := strings.TrimSpace(sb.String())
	if tip == "" {
		return fallbackTip(serviceName)
	}
	return tip
}

// StaticTipService is used when no API key is configured.
type StaticTipService struct{}

func (StaticTipService) AdviceFor(_ context.Context, serviceName string) string {
	return fallbackTip(serviceName)
}

func fallbackTip(serviceName string) string {
	switch {
	case strings.Contains(strings.ToLower(serviceName), "ems"):
		return "Hydrate well before your EMS session and bring a towel; the workout is short but intense."
	case strings.Contains(strings.ToLower(serviceName), "personal"):
		return "Arrive five minutes early so your trainer can tailor the session to how you feel today."
	default:
		return "Wear comfortable clothes, bring water, and arrive a few minutes before your session starts."
	}
}
