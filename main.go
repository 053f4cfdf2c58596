package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"creatorplus-server/modules/common/config"
	"creatorplus-server/modules/common/httpx"
	"creatorplus-server/modules/generate"
	"creatorplus-server/modules/hashtags"
	"creatorplus-server/modules/vision"
)

// healthCheck - liveness endpoint
func healthCheck(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "creatorplus-api",
	})
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	r := mux.NewRouter()

	r.Use(httpx.CORS)
	r.Use(httpx.RequestLog)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	vision.NewHandler().RegisterRoutes(r)
	hashtags.NewHandler().RegisterRoutes(r)
	generate.NewHandler().RegisterRoutes(r)

	log.Printf("🚀 CreatorPlus API server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
