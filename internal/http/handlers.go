// Package http wires the one-shot REST endpoints and the websocket route.
// The REST handlers are thin wrappers over the engine registry and the
// classifier; all streaming behavior lives in internal/ws.
package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/obiente/translate/gotranslator/internal/config"
	"github.com/obiente/translate/gotranslator/internal/engine"
	"github.com/obiente/translate/gotranslator/internal/langdetect"
)

type apiHandler struct {
	cfg        config.Config
	registry   *engine.Registry
	classifier *langdetect.Classifier
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Original    string `json:"original"`
	Translation string `json:"translation"`
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Text             string  `json:"text"`
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
	IsFrench         bool    `json:"is_french"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func (h *apiHandler) translate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "Text cannot be empty")
		return
	}
	if req.SourceLang == "" {
		req.SourceLang = h.cfg.SourceLang
	}
	if req.TargetLang == "" {
		req.TargetLang = h.cfg.TargetLang
	}

	eng, err := h.registry.Acquire()
	if err != nil {
		log.Error().Err(err).Msg("translate: engine unavailable")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	translation, err := eng.Translate(r.Context(), text)
	if err != nil {
		log.Error().Err(err).Msg("translate: generation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Original:    req.Text,
		Translation: translation,
		SourceLang:  req.SourceLang,
		TargetLang:  req.TargetLang,
	})
}

func (h *apiHandler) detectLanguage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req detectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		writeError(w, http.StatusBadRequest, "Text cannot be empty")
		return
	}

	det := h.classifier.Detect(text)
	writeJSON(w, http.StatusOK, detectResponse{
		Text:             req.Text,
		DetectedLanguage: det.Language,
		Confidence:       det.Confidence,
		IsFrench:         det.IsFrench,
	})
}
