package generate

import (
	"fmt"
	"strings"
)

const noTextInstruction = "IMPORTANT: THE GENERATED IMAGE MUST NOT CONTAIN ANY TEXT, LOGOS, OR WATERMARKS. JUST A CLEAN PHOTO."

// BuildImagePrompts - the two image-generation prompt variants for one
// request. With a model reference the pair is a virtual try-on plus an
// alternate pose; without one it is two generic lifestyle-shot variants.
func BuildImagePrompts(req *GenerateRequest) [2]string {
	base := buildBaseImagePrompt(req)
	if req.ModelImage != "" {
		return [2]string{
			"VIRTUAL TRY-ON: Show this model wearing this product. " + base,
			"A different elegant pose for the same model. " + base,
		}
	}
	return [2]string{
		"Modern model showcasing this product. " + base,
		"A high-end product lifestyle shot. " + base,
	}
}

// BuildCaptionPrompt - structured caption instruction embedding language,
// product, platform and tone, mandating the platform-keyed JSON shape.
func BuildCaptionPrompt(req *GenerateRequest) string {
	return fmt.Sprintf(`Language: %s
Product: %s
Platform: %s
Tone: %s
%s
%s
Return JSON ONLY: { "xiaohongshu": { "title": "...", "body": "...", "hashtags": [] }, "instagram": { ... }, "facebook": { ... } }`,
		langName(req.Lang), req.ProductDesc, req.PlatformName, req.VoiceStyle,
		customContext(req), feedbackContext(req))
}

func buildBaseImagePrompt(req *GenerateRequest) string {
	styleContext := "High-end social media visuals."
	if req.StylePreference != "" {
		styleContext = fmt.Sprintf("Style: %s.", req.StylePreference)
	}
	keywordContext := ""
	if len(req.PotentialHashtags) > 0 {
		keywordContext = fmt.Sprintf("Tags: %s.", strings.Join(req.PotentialHashtags, ", "))
	}
	return fmt.Sprintf("Clean professional lifestyle photo for %s. %s %s %s %s %s",
		req.PlatformName, styleContext, keywordContext, customContext(req), feedbackContext(req), noTextInstruction)
}

func customContext(req *GenerateRequest) string {
	if req.IsCustomizable {
		return "STRESS that the product is CUSTOMIZABLE and bespoke."
	}
	return ""
}

func feedbackContext(req *GenerateRequest) string {
	if req.FeedbackText != "" {
		return fmt.Sprintf(`User requested changes: "%s".`, req.FeedbackText)
	}
	return ""
}

func langName(lang string) string {
	if lang == "en" {
		return "English"
	}
	return "Chinese"
}
