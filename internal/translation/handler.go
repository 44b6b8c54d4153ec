package translation

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tatvax/edubot/internal/language"
	"github.com/tatvax/edubot/pkg/logging"
)

// Handler exposes translation over HTTP for the language preview modal.
type Handler struct {
	pipeline *Pipeline
	logger   *logging.Logger
}

func NewHandler(pipeline *Pipeline, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		pipeline: pipeline,
		logger:   logger.Component("translation_handler"),
	}
}

type translateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
	SourceLanguage string `json:"source_language"`
}

// Translate handles POST /api/translate.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "empty text")
		return
	}

	target := language.Code(req.TargetLanguage)
	if target == "" {
		target = language.English
	}
	source := language.Code(req.SourceLanguage)
	if source == "" {
		source = Auto
	}

	translated := h.pipeline.Translate(r.Context(), req.Text, target, source)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "success",
		"original_text":   req.Text,
		"translated_text": translated,
		"target_language": target,
	})
}

type batchRequest struct {
	Texts          []string `json:"texts"`
	TargetLanguage string   `json:"target_language"`
	SourceLanguage string   `json:"source_language"`
}

// TranslateBatch handles POST /api/translate/batch.
func (h *Handler) TranslateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Texts) == 0 {
		writeError(w, http.StatusBadRequest, "empty texts")
		return
	}

	target := language.Code(req.TargetLanguage)
	if target == "" {
		target = language.English
	}
	source := language.Code(req.SourceLanguage)
	if source == "" {
		source = Auto
	}

	translated := h.pipeline.TranslateBatch(r.Context(), req.Texts, target, source)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":           "success",
		"translated_texts": translated,
		"target_language":  target,
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"status": "error", "error": message})
}
