package hashtags

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"creatorplus-server/modules/common/apperr"
)

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: text}}},
		}},
	}
}

func stubService(text string) (*Service, *int) {
	calls := new(int)
	return &Service{model: "test-model", generate: func(ctx context.Context, model string, contents []*genai.Content, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		*calls++
		return textResponse(text), nil
	}}, calls
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("Failure/EmptyDescriptionNeverDispatches", func(t *testing.T) {
		svc, calls := stubService(`["a"]`)

		_, err := svc.Suggest(ctx, "", "en")

		assert.Equal(t, 400, apperr.StatusOf(err))
		assert.Equal(t, 0, *calls)
	})

	t.Run("Success/ParsesTagArray", func(t *testing.T) {
		svc, _ := stubService(`["handmade", "ceramics", "homedecor"]`)

		tags, err := svc.Suggest(ctx, "handmade ceramic vase", "en")

		require.NoError(t, err)
		assert.Equal(t, []string{"handmade", "ceramics", "homedecor"}, tags)
	})

	t.Run("Success/RequestsJSONMode", func(t *testing.T) {
		var gotCfg *genai.GenerateContentConfig
		svc := &Service{model: "test-model", generate: func(ctx context.Context, model string, contents []*genai.Content, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
			gotCfg = genCfg
			return textResponse(`[]`), nil
		}}

		_, err := svc.Suggest(ctx, "vase", "zh")

		require.NoError(t, err)
		require.NotNil(t, gotCfg)
		assert.Equal(t, "application/json", gotCfg.ResponseMIMEType)
	})

	t.Run("Degradation/UnparsableOutputYieldsEmptyList", func(t *testing.T) {
		svc, _ := stubService(`not json at all`)

		tags, err := svc.Suggest(ctx, "vase", "zh")

		require.NoError(t, err)
		assert.Equal(t, []string{}, tags)
	})

	t.Run("Degradation/NonArrayOutputYieldsEmptyList", func(t *testing.T) {
		svc, _ := stubService(`{"tags": ["a"]}`)

		tags, err := svc.Suggest(ctx, "vase", "zh")

		require.NoError(t, err)
		assert.Equal(t, []string{}, tags)
	})

	t.Run("Degradation/NullOutputYieldsEmptyList", func(t *testing.T) {
		svc, _ := stubService(`null`)

		tags, err := svc.Suggest(ctx, "vase", "zh")

		require.NoError(t, err)
		assert.Equal(t, []string{}, tags)
	})
}

func TestBuildHashtagPrompt(t *testing.T) {
	t.Run("EmbedsDescriptionAndLanguage", func(t *testing.T) {
		prompt := BuildHashtagPrompt("ceramic vase", "en")
		assert.Contains(t, prompt, `"ceramic vase"`)
		assert.Contains(t, prompt, "English")
		assert.Contains(t, prompt, "JSON array of strings")
	})

	t.Run("DefaultsToChinese", func(t *testing.T) {
		assert.Contains(t, BuildHashtagPrompt("vase", ""), "Chinese")
		assert.Contains(t, BuildHashtagPrompt("vase", "zh"), "Chinese")
	})
}
