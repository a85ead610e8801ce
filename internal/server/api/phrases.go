package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/translate"
)

// PhrasesHandler handles HTTP requests for completed phrases.
type PhrasesHandler struct {
	store *store.Store
}

// NewPhrasesHandler creates a new PhrasesHandler with the given store.
func NewPhrasesHandler(s *store.Store) *PhrasesHandler {
	return &PhrasesHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
func (h *PhrasesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/phrases or /api/phrases/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/phrases")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodDelete:
			h.clear(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Response types

type phraseResponse struct {
	ID         string            `json:"id"`
	Sentence   string            `json:"sentence"`
	Tokens     []translate.Token `json:"tokens"`
	Handedness string            `json:"handedness,omitempty"`
	Mood       string            `json:"mood"`
	StartedAt  int64             `json:"started_at"`
	EndedAt    int64             `json:"ended_at"`
	CreatedAt  string            `json:"created_at"`
}

type listPhrasesResponse struct {
	Phrases []phraseResponse `json:"phrases"`
}

// toPhraseResponse converts a store.Phrase to a phraseResponse.
func toPhraseResponse(p *store.Phrase) phraseResponse {
	resp := phraseResponse{
		ID:         p.ID,
		Sentence:   p.Sentence,
		Handedness: p.Handedness,
		Mood:       p.Mood,
		StartedAt:  p.StartedAt,
		EndedAt:    p.EndedAt,
		CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if err := json.Unmarshal([]byte(p.Tokens), &resp.Tokens); err != nil {
		resp.Tokens = nil
	}
	return resp
}

// list handles GET /api/phrases with an optional limit parameter.
func (h *PhrasesHandler) list(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	phrases, err := h.store.Phrases().List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list phrases")
		return
	}

	response := listPhrasesResponse{
		Phrases: make([]phraseResponse, 0, len(phrases)),
	}
	for _, p := range phrases {
		response.Phrases = append(response.Phrases, toPhraseResponse(p))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/phrases/{id} and returns a single phrase.
func (h *PhrasesHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	phrase, err := h.store.Phrases().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Phrase not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get phrase")
		return
	}

	writeJSON(w, http.StatusOK, toPhraseResponse(phrase))
}

// delete handles DELETE /api/phrases/{id} and removes a phrase.
func (h *PhrasesHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Phrases().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Phrase not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete phrase")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// clear handles DELETE /api/phrases and wipes the whole history.
func (h *PhrasesHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Phrases().Clear(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear phrases")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
