package generate

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

// RegisterRoutes - register the generation routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate", h.HandleGenerate)
	log.Println("✅ Generate routes registered: /api/generate")
}

// HandleGenerate - POST /api/generate
// Produces up to two enhanced images plus platform-tailored captions.
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.WriteMethodNotAllowed(w)
		return
	}

	var req GenerateRequest
	httpx.DecodeBody(w, r, &req)

	log.Printf("🎨 [Generate] Processing request: images=%d, platform=%s, lang=%s",
		len(req.Images), req.Platform, req.Lang)

	result, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		log.Printf("❌ [Generate] Generation failed: %v", err)
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, result)
}
