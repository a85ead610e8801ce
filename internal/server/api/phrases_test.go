package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/ayusman/mudra/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "mudra.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func seedPhrases(t *testing.T, st *store.Store, sentences ...string) []string {
	t.Helper()

	ids := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		p := &store.Phrase{
			Sentence:   sentence,
			Handedness: "Right",
			Tokens:     `[{"text":"` + sentence + `","kind":"word"}]`,
		}
		if err := st.Phrases().Create(p); err != nil {
			t.Fatalf("Failed to seed phrase: %v", err)
		}
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPhrasesHandler_List(t *testing.T) {
	st := newTestStore(t)
	seedPhrases(t, st, "HELLO", "YOU", "GOODBYE")
	h := NewPhrasesHandler(st)

	t.Run("returns all phrases", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/phrases", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}

		var response listPhrasesResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(response.Phrases) != 3 {
			t.Errorf("got %d phrases, want 3", len(response.Phrases))
		}
		for _, p := range response.Phrases {
			if len(p.Tokens) != 1 {
				t.Errorf("phrase %s tokens = %+v, want one decoded token", p.ID, p.Tokens)
			}
		}
	})

	t.Run("honours the limit parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/phrases?limit=2", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		var response listPhrasesResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(response.Phrases) != 2 {
			t.Errorf("got %d phrases, want 2", len(response.Phrases))
		}
	})

	t.Run("rejects a malformed limit", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/phrases?limit=lots", nil)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
		}
	})
}

func TestPhrasesHandler_Get(t *testing.T) {
	st := newTestStore(t)
	ids := seedPhrases(t, st, "HELLO")
	h := NewPhrasesHandler(st)

	req := httptest.NewRequest(http.MethodGet, "/api/phrases/"+ids[0], nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var response phraseResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Sentence != "HELLO" {
		t.Errorf("sentence = %q, want HELLO", response.Sentence)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/phrases/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestPhrasesHandler_Delete(t *testing.T) {
	st := newTestStore(t)
	ids := seedPhrases(t, st, "HELLO", "YOU")
	h := NewPhrasesHandler(st)

	req := httptest.NewRequest(http.MethodDelete, "/api/phrases/"+ids[0], nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if n, _ := st.Phrases().Count(); n != 1 {
		t.Errorf("remaining phrases = %d, want 1", n)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/phrases/"+ids[0], nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestPhrasesHandler_Clear(t *testing.T) {
	st := newTestStore(t)
	seedPhrases(t, st, "HELLO", "YOU")
	h := NewPhrasesHandler(st)

	req := httptest.NewRequest(http.MethodDelete, "/api/phrases", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if n, _ := st.Phrases().Count(); n != 0 {
		t.Errorf("remaining phrases = %d, want 0", n)
	}
}
