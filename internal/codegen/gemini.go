// Package codegen is the boundary to the LLM-backed code generator that
// turns a mapping result plus skeleton into final component source. The
// mapping engine never depends on it; the gateway calls it only when asked.
package codegen

import (
	"context"
	"encoding/json"
	"fmt"

	genai "google.golang.org/genai"

	"archemap/internal/gateway/model"
)

const refinePrompt = `You are given a UI component mapping produced by a
structural classifier, plus a code skeleton. Refine the skeleton into a
complete React + TypeScript component. Keep the slot structure and prop
names; fill in layout and styling from the mapping's node hints. Reply with
JSON: {"code": "<the full component source>"}.`

// GeminiClient is a thin wrapper around the official genai client. Rate
// limiting and retries belong to the caller.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

func NewGeminiClient(ctx context.Context, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }

// Refine asks the model to expand a skeleton into full component source.
func (g *GeminiClient) Refine(ctx context.Context, rec model.MappingRecord) (string, error) {
	if g == nil || g.cli == nil {
		return "", fmt.Errorf("codegen client is not configured")
	}
	in, _ := json.MarshalIndent(rec, "", "  ")
	full := refinePrompt + "\n\n[MAPPING JSON]\n" + string(in)

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from %s", g.model)
	}

	var out struct {
		Code string `json:"code"`
	}
	raw := resp.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return "", fmt.Errorf("parse codegen response: %w", err)
	}
	if out.Code == "" {
		return "", fmt.Errorf("codegen response carried no code")
	}
	return out.Code, nil
}
