package api

import (
	"net/http"

	"github.com/Natfii/voxelbiome/internal/config"
	"github.com/Natfii/voxelbiome/internal/ws"
)

// NewRouter builds the debug server's HTTP mux.
func NewRouter(hub *ws.Hub, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	handler := NewHandler(hub, cfg)

	mux.HandleFunc("GET /health", handler.Health)

	mux.HandleFunc("POST /api/worlds", handler.CreateWorld)
	mux.HandleFunc("GET /api/worlds", handler.ListWorlds)
	mux.HandleFunc("GET /api/worlds/{id}/point", handler.QueryPoint)
	mux.HandleFunc("GET /ws/worlds/{id}", handler.WebSocket)

	return corsMiddleware(mux)
}

// corsMiddleware adds permissive CORS headers, matching the debug server's
// "local tooling only" posture.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
