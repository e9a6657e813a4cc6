package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stonewall-sec/auditscope/pkg/catalog"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Debugf("Could not write response: %v", err)
	}
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.State.Snapshot())
}

func (s *Server) handleGetSelection(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.State.Selected())
}

func (s *Server) handlePutSelection(w http.ResponseWriter, r *http.Request) {
	var rec catalog.AuditRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.State.Select(rec)
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteSelection(w http.ResponseWriter, r *http.Request) {
	s.State.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

// handleSelectForm resolves a card index from the page into a record.
func (s *Server) handleSelectForm(w http.ResponseWriter, r *http.Request) {
	idx, err := strconv.Atoi(r.FormValue("index"))
	recs := s.State.Collection()
	if err != nil || idx < 0 || idx >= len(recs) {
		http.Error(w, "invalid audit index", http.StatusBadRequest)
		return
	}
	s.State.Select(recs[idx])
	http.Redirect(w, r, "/#viewer", http.StatusSeeOther)
}

func (s *Server) handleDismissForm(w http.ResponseWriter, r *http.Request) {
	s.State.Dismiss()
	http.Redirect(w, r, "/#audits", http.StatusSeeOther)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := CatalogPage(s.State.Snapshot()).Render(w); err != nil {
		s.Log.Errorf("Could not render catalog page: %v", err)
	}
}
