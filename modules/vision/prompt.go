package vision

const (
	visionPromptZH = "识别图中展示的一组产品。请基于这些图片，用简短的关键词组合作为描述。不要写长句，只返回2-4个核心词。"
	visionPromptEN = "Identify the product in these images. Provide a brief combination of keywords. Return ONLY 2-4 keywords."
)

// BuildVisionPrompt - keyword-description instruction keyed by language.
// Asks for 2-4 core keywords, no long-form sentences.
func BuildVisionPrompt(lang string) string {
	if lang == "en" {
		return visionPromptEN
	}
	return visionPromptZH
}
