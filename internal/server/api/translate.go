package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/translate"
)

// TranslateHandler handles text-to-sign requests.
type TranslateHandler struct {
	app *app.App
}

// NewTranslateHandler creates a new TranslateHandler backed by the
// given engine.
func NewTranslateHandler(a *app.App) *TranslateHandler {
	return &TranslateHandler{app: a}
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	Text  string           `json:"text"`
	Signs []translate.Sign `json:"signs"`
}

// ServeHTTP handles POST /api/translate.
func (h *TranslateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "Text is required")
		return
	}

	signs := h.app.Translate(req.Text)
	writeJSON(w, http.StatusOK, translateResponse{
		Text:  req.Text,
		Signs: signs,
	})
}
