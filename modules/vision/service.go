package vision

import (
	"context"
	"strings"

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

// Describe - identify the product shown across the supplied images and
// return a short keyword description. Validation happens before dispatch,
// so an empty image list never reaches the provider.
func (s *Service) Describe(ctx context.Context, images []string, lang string) (string, error) {
	if len(images) == 0 {
		return "", apperr.ClientInput("images required")
	}

	parts := imagedata.Parts(images)
	parts = append(parts, genai.NewPartFromText(BuildVisionPrompt(lang)))

	resp, err := s.generate(ctx, s.model, []*genai.Content{{Parts: parts}}, nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(imagedata.Text(resp)), nil
}
