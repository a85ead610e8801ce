// Package api provides the HTTP API handlers of the mudra translation
// engine.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/translate"
)

// DictionaryHandler handles HTTP requests for dictionary entries.
type DictionaryHandler struct {
	app *app.App
}

// NewDictionaryHandler creates a new DictionaryHandler backed by the
// given engine.
func NewDictionaryHandler(a *app.App) *DictionaryHandler {
	return &DictionaryHandler{app: a}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *DictionaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Expected paths: /api/dictionary, /api/dictionary/export,
	// /api/dictionary/import or /api/dictionary/{tag}
	path := strings.TrimPrefix(r.URL.Path, "/api/dictionary")
	path = strings.TrimPrefix(path, "/")

	switch path {
	case "":
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		case http.MethodPost:
			h.upsert(w, r, "")
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "export":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.export(w, r)
	case "import":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.importEntries(w, r)
	default:
		tag := path
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, tag)
		case http.MethodPut:
			h.upsert(w, r, tag)
		case http.MethodDelete:
			h.delete(w, r, tag)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// Request and response types

type upsertEntryRequest struct {
	Tag         string `json:"tag"`
	Text        string `json:"text"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

type listEntriesResponse struct {
	Entries []translate.Entry `json:"entries"`
}

type importEntriesRequest struct {
	Entries []translate.Entry `json:"entries"`
}

type importEntriesResponse struct {
	Imported int `json:"imported"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// list handles GET /api/dictionary and returns all entries.
func (h *DictionaryHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, listEntriesResponse{Entries: h.app.Entries()})
}

// get handles GET /api/dictionary/{tag} and returns a single entry.
func (h *DictionaryHandler) get(w http.ResponseWriter, r *http.Request, tag string) {
	entry, ok := h.app.Entry(gesture.Label(tag))
	if !ok {
		writeError(w, http.StatusNotFound, "Entry not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// upsert handles POST /api/dictionary and PUT /api/dictionary/{tag}.
// A tag in the path wins over one in the body.
func (h *DictionaryHandler) upsert(w http.ResponseWriter, r *http.Request, tag string) {
	var req upsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if tag != "" {
		req.Tag = tag
	}

	entry := translate.Entry{
		Tag:         gesture.Label(req.Tag),
		Text:        req.Text,
		Kind:        translate.Kind(req.Kind),
		Description: req.Description,
	}
	_, existed := h.app.Entry(entry.Tag)

	if err := h.app.UpsertEntry(entry); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := http.StatusCreated
	if existed {
		status = http.StatusOK
	}
	writeJSON(w, status, entry)
}

// delete handles DELETE /api/dictionary/{tag}.
func (h *DictionaryHandler) delete(w http.ResponseWriter, r *http.Request, tag string) {
	if err := h.app.DeleteEntry(gesture.Label(tag)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// export handles GET /api/dictionary/export and returns the entries as
// a downloadable document that import accepts unchanged.
func (h *DictionaryHandler) export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Disposition", `attachment; filename="mudra-dictionary.json"`)
	writeJSON(w, http.StatusOK, listEntriesResponse{Entries: h.app.Entries()})
}

// importEntries handles POST /api/dictionary/import and merges a batch of
// entries.
func (h *DictionaryHandler) importEntries(w http.ResponseWriter, r *http.Request) {
	var req importEntriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	n, err := h.app.ImportEntries(req.Entries)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to import entries")
		return
	}
	writeJSON(w, http.StatusOK, importEntriesResponse{Imported: n})
}
