package hashtags

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"creatorplus-server/modules/common/httpx"
)

type Handler struct {
	service *Service
}

func NewHandler() *Handler {
	return &Handler{
		service: NewService(),
	}
}

// RegisterRoutes - register the hashtag routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/hashtags", h.HandleSuggest)
	log.Println("✅ Hashtag routes registered: /api/hashtags")
}

// HandleSuggest - POST /api/hashtags
func (h *Handler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.WriteMethodNotAllowed(w)
		return
	}

	var req SuggestRequest
	httpx.DecodeBody(w, r, &req)

	log.Printf("🏷️ [Hashtags] Processing request: desc=%s, lang=%s", truncateString(req.ProductDesc, 30), req.Lang)

	tags, err := h.service.Suggest(r.Context(), req.ProductDesc, req.Lang)
	if err != nil {
		log.Printf("❌ [Hashtags] Suggest failed: %v", err)
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, SuggestResponse{Tags: tags})
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
