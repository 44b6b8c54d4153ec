package chatbot

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tatvax/edubot/internal/language"
	"github.com/tatvax/edubot/internal/observability/metrics"
	"github.com/tatvax/edubot/internal/speech"
	"github.com/tatvax/edubot/pkg/logging"
)

// Handler exposes the chat pipeline over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
	metrics *metrics.ChatMetrics
}

func NewHandler(service *Service, logger *logging.Logger, m *metrics.ChatMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger.Component("chat_handler"),
		metrics: m,
	}
}

// Routes returns the chat API routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/chat/text", h.ChatText)
	r.Post("/chat/voice", h.ChatVoice)
	r.Get("/subjects", h.Subjects)
	r.Get("/languages", h.Languages)
	r.Get("/audio/{filename}", h.ServeAudio)
	r.Get("/audio/play/{filename}", h.PlayAudio)
	r.Post("/audio/stop", h.StopAudio)
	r.Post("/clear", h.Clear)
	r.Get("/status", h.Status)
	return r
}

type chatRequest struct {
	Message  string `json:"message"`
	Mode     string `json:"mode"`
	Language string `json:"language"`
	Subject  string `json:"subject"`
}

func (req chatRequest) toRequest() Request {
	mode := req.Mode
	if mode == "" {
		mode = ModeSubjects
	}
	lang := language.Code(req.Language)
	if lang == "" {
		lang = language.English
	}
	subject := req.Subject
	if subject == "" {
		subject = "general"
	}
	return Request{
		Message:  req.Message,
		Mode:     mode,
		Language: lang,
		Subject:  subject,
	}
}

type chatResponse struct {
	Status string `json:"status"`
	*Reply
}

// ChatText handles POST /api/chat/text.
func (h *Handler) ChatText(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveRequest("text", "bad_request", time.Since(start).Seconds())
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.metrics.ObserveRequest("text", "bad_request", time.Since(start).Seconds())
		writeError(w, http.StatusBadRequest, "empty message")
		return
	}

	reply, err := h.service.HandleText(r.Context(), req.toRequest())
	if err != nil {
		h.metrics.ObserveRequest("text", "error", time.Since(start).Seconds())
		h.logger.Error("chat text failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	h.metrics.ObserveRequest("text", "ok", time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, chatResponse{Status: "success", Reply: reply})
}

// ChatVoice handles POST /api/chat/voice. The body carries mode, language
// and subject; the message comes from the microphone.
func (h *Handler) ChatVoice(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveRequest("voice", "bad_request", time.Since(start).Seconds())
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	reply, err := h.service.HandleVoice(r.Context(), req.toRequest())
	if err != nil {
		status := "error"
		switch {
		case errors.Is(err, speech.ErrNoSpeech), errors.Is(err, speech.ErrNotUnderstood):
			// Expected outcomes; the client prompts the user to retry.
			status = "retry"
			h.metrics.ObserveRequest("voice", status, time.Since(start).Seconds())
			writeJSON(w, http.StatusOK, map[string]string{
				"status":  "retry",
				"message": err.Error(),
			})
			return
		case errors.Is(err, speech.ErrUnavailable):
			h.metrics.ObserveRequest("voice", status, time.Since(start).Seconds())
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		h.metrics.ObserveRequest("voice", status, time.Since(start).Seconds())
		h.logger.Error("chat voice failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to process voice input")
		return
	}

	h.metrics.ObserveRequest("voice", "ok", time.Since(start).Seconds())
	writeJSON(w, http.StatusOK, chatResponse{Status: "success", Reply: reply})
}

// Subjects handles GET /api/subjects.
func (h *Handler) Subjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "success",
		"subjects": h.service.library.Subjects(),
	})
}

// Languages handles GET /api/languages.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "success",
		"languages": language.DisplayNames(),
	})
}

// ServeAudio handles GET /api/audio/{filename}.
func (h *Handler) ServeAudio(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	path, err := h.service.audio.Resolve(filename)
	if err != nil {
		writeError(w, http.StatusNotFound, "audio file not found")
		return
	}
	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}

// PlayAudio handles GET /api/audio/play/{filename}.
func (h *Handler) PlayAudio(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	if err := h.service.audio.Play(filename); err != nil {
		h.logger.Warn("audio playback failed", "filename", filename, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to play audio")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Audio playing"})
}

// StopAudio handles POST /api/audio/stop.
func (h *Handler) StopAudio(w http.ResponseWriter, r *http.Request) {
	h.service.audio.Stop()
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Audio stopped"})
}

// Clear handles POST /api/clear.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context()); err != nil {
		h.logger.Error("failed to clear conversation", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to clear chat history")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Chat history cleared"})
}

// Status handles GET /api/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":               "success",
		"services_initialized": status.ServicesInitialized,
		"conversation_count":   status.ConversationCount,
		"supported_languages":  status.SupportedLanguages,
		"available_subjects":   status.AvailableSubjects,
		"audio_playing":        status.AudioPlaying,
		"server_time":          status.ServerTime,
		"translation":          status.Translation,
		"content":              status.Content,
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
