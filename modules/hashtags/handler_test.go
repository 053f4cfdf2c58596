package hashtags

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"creatorplus-server/modules/common/httpx"
)

func TestHandleSuggest(t *testing.T) {
	handler := &Handler{service: &Service{model: "test-model", generate: func(ctx context.Context, model string, contents []*genai.Content, genCfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
		return textResponse(`["handmade","vase"]`), nil
	}}}

	t.Run("Failure/NonPostReturns405", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.HandleSuggest(w, httptest.NewRequest(http.MethodPut, "/api/hashtags", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("Failure/MissingDescReturns400", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.HandleSuggest(w, httptest.NewRequest(http.MethodPost, "/api/hashtags", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body httpx.ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "productDesc required", body.Error)
	})

	t.Run("Success/ReturnsTags", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.HandleSuggest(w, httptest.NewRequest(http.MethodPost, "/api/hashtags",
			strings.NewReader(`{"productDesc":"handmade ceramic vase","lang":"en"}`)))

		assert.Equal(t, http.StatusOK, w.Code)

		var body SuggestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"handmade", "vase"}, body.Tags)
	})
}
