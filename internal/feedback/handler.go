package feedback

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tatvax/edubot/pkg/logging"
)

// Handler exposes feedback submission over HTTP.
type Handler struct {
	store  *Store
	logger *logging.Logger
}

func NewHandler(store *Store, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:  store,
		logger: logger.Component("feedback_handler"),
	}
}

// Submit handles POST /api/feedback.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var entry Entry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "invalid JSON body",
		})
		return
	}
	if strings.TrimSpace(entry.Message) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "Feedback message is required",
		})
		return
	}

	id, err := h.store.Save(entry)
	if err != nil {
		h.logger.Error("failed to save feedback", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Failed to save feedback. Please try again.",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":      "success",
		"message":     "Feedback submitted successfully!",
		"feedback_id": id,
	})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
