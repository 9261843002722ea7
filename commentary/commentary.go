// Package commentary produces short AI-generated notes about the club's
// holdings. It is best-effort decoration: every failure degrades to a
// message, never to an error the caller has to handle.
package commentary

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-3-flash-preview"

// Analyst wraps a Gemini client for one-shot market commentary.
type Analyst struct {
	client *genai.Client
	model  string
}

// New creates an analyst. The client reads its API key from the environment
// (GEMINI_API_KEY or GOOGLE_API_KEY).
func New(ctx context.Context) (*Analyst, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create the Gemini client: %w", err)
	}
	return &Analyst{client: client, model: defaultModel}, nil
}

// AssetInsight returns a short sentiment summary for one ticker, grounded on
// recent news through search.
func (a *Analyst) AssetInsight(ctx context.Context, ticker string) string {
	prompt := fmt.Sprintf("Provide a very brief (2-3 sentences) financial sentiment summary for %s stock based on recent news. Be professional and concise. Focus on recent performance or major news events.", ticker)
	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	text, err := a.generate(ctx, prompt, config)
	if err != nil {
		return "Unable to fetch market insights at this time."
	}
	return text
}

// DistributionQuip returns one witty sentence about the portfolio's
// diversification across the given tickers.
func (a *Analyst) DistributionQuip(ctx context.Context, tickers []string) string {
	prompt := fmt.Sprintf("I have a portfolio with these assets: %s. Give me one single short, witty, and insightful sentence about this diversification strategy.", strings.Join(tickers, ", "))
	text, err := a.generate(ctx, prompt, nil)
	if err != nil {
		return "Could not analyze portfolio."
	}
	return text
}

func (a *Analyst) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no text in response")
	}
	return b.String(), nil
}
