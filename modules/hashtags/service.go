package hashtags

import (
	"context"
	"encoding/json"
	"log"

	"google.golang.org/genai"

	"creatorplus-server/modules/common/apperr"
	"creatorplus-server/modules/common/config"
	"creatorplus-server/modules/common/gemini"
	"creatorplus-server/modules/common/imagedata"
)

type Service struct {
	model    string
	generate gemini.GenerateFunc
}

func NewService() *Service {
	cfg := config.GetConfig()
	return &Service{
		model:    cfg.GeminiTextModel,
		generate: gemini.Generate,
	}
}

// Suggest - derive 3-5 hashtags from a product description. Unparsable or
// non-array provider output degrades to an empty list rather than failing
// the request; the degradation is decided here, not in the adapter.
func (s *Service) Suggest(ctx context.Context, productDesc, lang string) ([]string, error) {
	if productDesc == "" {
		return nil, apperr.ClientInput("productDesc required")
	}

	contents := []*genai.Content{{Parts: []*genai.Part{
		genai.NewPartFromText(BuildHashtagPrompt(productDesc, lang)),
	}}}

	resp, err := s.generate(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, err
	}

	var tags []string
	if err := json.Unmarshal([]byte(imagedata.Text(resp)), &tags); err != nil {
		log.Printf("⚠️ [Hashtags] Ignoring unparsable tag list: %v", err)
		return []string{}, nil
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
