package server

import (
	"encoding/json"
	"net/http"

	"github.com/lazypower/filemru/internal/mru"
)

type entryJSON struct {
	Mnemonic int    `json:"mnemonic"`
	Path     string `json:"path"`
	Label    string `json:"label"`
}

func entriesJSON(entries []mru.Entry) []entryJSON {
	out := make([]entryJSON, len(entries))
	for i, e := range entries {
		out[i] = entryJSON{
			Mnemonic: e.Mnemonic,
			Path:     e.Path,
			Label:    mru.FormatLabel(e.Mnemonic, e.Path),
		}
	}
	return out
}

func (s *Server) writeList(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"entries":     entriesJSON(s.list.Entries()),
		"last_opened": s.list.LastOpened(),
	})
}

func (s *Server) handleListRecent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeList(w, http.StatusOK)
}

func (s *Server) handleAddRecent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		http.Error(w, `{"error":"path required"}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.list.Add(req.Path); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}
	s.writeList(w, http.StatusCreated)
}

func (s *Server) handleClearRecent(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.list.Clear(); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}

func (s *Server) handleGetLastOpened(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	last := s.list.LastOpened()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"last_opened": last})
}

func (s *Server) handleSetLastOpened(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
		return
	}
	if req.Path == "" {
		http.Error(w, `{"error":"path required"}`, http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.list.SetLastOpened(req.Path); err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"last_opened": s.list.LastOpened()})
}
