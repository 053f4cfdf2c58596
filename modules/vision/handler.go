package vision

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

// RegisterRoutes - register the vision routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/vision", h.HandleDescribe)
	log.Println("✅ Vision routes registered: /api/vision")
}

// HandleDescribe - POST /api/vision
// Derives a short keyword description from the uploaded product photos.
func (h *Handler) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpx.WriteMethodNotAllowed(w)
		return
	}

	var req DescribeRequest
	httpx.DecodeBody(w, r, &req)

	log.Printf("👁️ [Vision] Processing request: images=%d, lang=%s", len(req.Images), req.Lang)

	text, err := h.service.Describe(r.Context(), req.Images, req.Lang)
	if err != nil {
		log.Printf("❌ [Vision] Describe failed: %v", err)
		httpx.WriteError(w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, DescribeResponse{Text: text})
}
