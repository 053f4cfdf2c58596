package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatorplus-server/modules/common/apperr"
)

type testBody struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestDecodeBody(t *testing.T) {
	decode := func(t *testing.T, body string) testBody {
		t.Helper()
		r := httptest.NewRequest(http.MethodPost, "/api/test", strings.NewReader(body))
		var v testBody
		DecodeBody(httptest.NewRecorder(), r, &v)
		return v
	}

	t.Run("Success/ValidJSON", func(t *testing.T) {
		v := decode(t, `{"name":"vase","items":["a","b"]}`)
		assert.Equal(t, "vase", v.Name)
		assert.Equal(t, []string{"a", "b"}, v.Items)
	})

	t.Run("Tolerance/EmptyBodyLeavesZeroValue", func(t *testing.T) {
		assert.Equal(t, testBody{}, decode(t, ""))
	})

	t.Run("Tolerance/MalformedBodyLeavesZeroValue", func(t *testing.T) {
		assert.Equal(t, testBody{}, decode(t, `{"name": "broken`))
	})

	t.Run("Tolerance/NonObjectBodyLeavesZeroValue", func(t *testing.T) {
		assert.Equal(t, testBody{}, decode(t, `"just a string"`))
	})
}

func TestWriteError(t *testing.T) {
	t.Run("TypedErrorCarriesItsStatus", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, apperr.ClientInput("images required"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body ErrorBody
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "images required", body.Error)
	})

	t.Run("UnknownErrorDefaultsTo500", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestWriteMethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	WriteMethodNotAllowed(w)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Method not allowed", body.Error)
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("PreflightShortCircuits", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/vision", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("OtherMethodsPassThrough", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/vision", nil))

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
