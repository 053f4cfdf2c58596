package hashtags

import "fmt"

// BuildHashtagPrompt - single-sentence instruction requesting 3-5 hashtags
// for the product description, constrained to a JSON array of strings.
func BuildHashtagPrompt(productDesc, lang string) string {
	langName := "Chinese"
	if lang == "en" {
		langName = "English"
	}
	return fmt.Sprintf(`Based on: "%s", extract 3-5 highly relevant hashtags in %s. Return ONLY a JSON array of strings.`, productDesc, langName)
}
