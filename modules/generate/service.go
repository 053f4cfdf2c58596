package generate

import (
	"context"
	"encoding/json"
	"log"

	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"creatorplus-server/modules/common/apperr"
	"creatorplus-server/modules/common/config"
	"creatorplus-server/modules/common/gemini"
	"creatorplus-server/modules/common/imagedata"
)

type Service struct {
	imageModel string
	textModel  string
	generate   gemini.GenerateFunc
}

func NewService() *Service {
	cfg := config.GetConfig()
	return &Service{
		imageModel: cfg.GeminiImageModel,
		textModel:  cfg.GeminiTextModel,
		generate:   gemini.Generate,
	}
}

// Generate - fan out two image-generation calls and one caption call against
// the provider, then assemble the structured result. The three calls run
// concurrently and any failure fails the whole operation; there is no
// partial-success path. A generated image that cannot be extracted is
// dropped, so the result may carry 0, 1 or 2 images in dispatch order.
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if len(req.Images) == 0 {
		return nil, apperr.ClientInput("images required")
	}
	if req.PlatformName == "" {
		req.PlatformName = "Instagram"
	}
	if req.Lang == "" {
		req.Lang = "zh"
	}

	primaryProduct := imagedata.Parse(req.Images[0]).Part()
	var modelPart *genai.Part
	if req.ModelImage != "" {
		modelPart = imagedata.Parse(req.ModelImage).Part()
	}

	// Two image variants: model + product parts when a model reference is
	// present, product part only otherwise.
	prompts := BuildImagePrompts(req)
	imageContents := make([][]*genai.Content, 0, len(prompts))
	for _, prompt := range prompts {
		parts := make([]*genai.Part, 0, 3)
		if modelPart != nil {
			parts = append(parts, modelPart)
		}
		if primaryProduct != nil {
			parts = append(parts, primaryProduct)
		}
		parts = append(parts, genai.NewPartFromText(prompt))
		imageContents = append(imageContents, []*genai.Content{{Parts: parts}})
	}

	// Caption call sees every product image plus the structured prompt.
	captionParts := imagedata.Parts(req.Images)
	captionParts = append(captionParts, genai.NewPartFromText(BuildCaptionPrompt(req)))

	log.Printf("🎨 [Generate] Dispatching 2 image calls + 1 caption call (platform: %s, model image: %v)",
		req.Platform, modelPart != nil)

	var results [3]*genai.GenerateContentResponse
	g, gctx := errgroup.WithContext(ctx)
	for i, contents := range imageContents {
		g.Go(func() error {
			resp, err := s.generate(gctx, s.imageModel, contents, nil)
			if err != nil {
				return err
			}
			results[i] = resp
			return nil
		})
	}
	g.Go(func() error {
		resp, err := s.generate(gctx, s.textModel, []*genai.Content{{Parts: captionParts}}, &genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		})
		if err != nil {
			return err
		}
		results[2] = resp
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	images := make([]string, 0, 2)
	for _, resp := range results[:2] {
		if img := imagedata.ExtractImage(resp); img != "" {
			images = append(images, img)
		}
	}

	// Unparsable caption output degrades to an empty map; the images are
	// still worth returning.
	content := map[string]ContentBlock{}
	if text := imagedata.Text(results[2]); text != "" {
		if err := json.Unmarshal([]byte(text), &content); err != nil {
			log.Printf("⚠️ [Generate] Ignoring unparsable caption content: %v", err)
			content = map[string]ContentBlock{}
		}
		if content == nil {
			content = map[string]ContentBlock{}
		}
	}

	log.Printf("✅ [Generate] Done: images=%d, platforms=%d", len(images), len(content))

	return &GenerateResponse{
		Images:   images,
		Content:  content,
		Platform: req.Platform,
	}, nil
}
