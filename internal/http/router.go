package http

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/obiente/translate/gotranslator/internal/config"
	"github.com/obiente/translate/gotranslator/internal/engine"
	"github.com/obiente/translate/gotranslator/internal/langdetect"
	"github.com/obiente/translate/gotranslator/internal/ws"
)

func NewRouter(cfg config.Config, reg *engine.Registry, cls *langdetect.Classifier) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":    "healthy",
			"mock_mode": cfg.UseMockEngine,
		})
	})

	api := &apiHandler{cfg: cfg, registry: reg, classifier: cls}
	mux.HandleFunc("/api/translate", api.translate)
	mux.HandleFunc("/api/detect-language", api.detectLanguage)

	// Streaming translation WebSocket
	wss := ws.NewServer(cfg, reg, cls)
	mux.HandleFunc("/ws/translate", wss.Handle)

	if cfg.StaticDir != "" {
		mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				http.NotFound(w, r)
				return
			}
			http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
		})
	}

	return mux
}
