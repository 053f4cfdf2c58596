package gemini

import (
	"context"
	"log"

	"google.golang.org/genai"

	"creatorplus-server/modules/common/apperr"
	"creatorplus-server/modules/common/config"
)

// GenerateFunc - dispatches one generation request to the model provider.
// Services hold this as a field so tests can substitute a stub.
type GenerateFunc func(ctx context.Context, model string, contents []*genai.Content, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)

// Generate - issue a single GenerateContent call against the Gemini API.
// The credential is resolved per call: a missing key yields a Configuration
// error on the request rather than a startup failure. Calls are not retried.
func Generate(ctx context.Context, model string, contents []*genai.Content, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	cfg := config.GetConfig()
	if cfg.GeminiAPIKey == "" {
		return nil, apperr.Configuration("Missing GEMINI_API_KEY on server.")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("❌ [Gemini] Failed to create client: %v", err)
		return nil, apperr.Provider("failed to create Gemini client", err)
	}

	result, err := client.Models.GenerateContent(ctx, model, contents, genCfg)
	if err != nil {
		log.Printf("❌ [Gemini] API error (model: %s): %v", model, err)
		return nil, apperr.Provider("Gemini API error", err)
	}

	return result, nil
}
