package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/newsbot/pkg/domain"
)

// sourceInfo is the json view of a source
type sourceInfo struct {
	ID          int64      `json:"id"`
	URL         string     `json:"url"`
	Kind        string     `json:"kind"`
	Title       string     `json:"title,omitempty"`
	Active      bool       `json:"active"`
	ErrorCount  int        `json:"error_count"`
	CheckCount  int        `json:"check_count"`
	LastChecked *time.Time `json:"last_checked,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
	LastError   string     `json:"last_error,omitempty"`
}

func newSourceInfo(src *domain.Source) sourceInfo {
	return sourceInfo{
		ID:          src.ID,
		URL:         src.URL,
		Kind:        string(src.Kind),
		Title:       src.Title,
		Active:      src.Active,
		ErrorCount:  src.ErrorCount,
		CheckCount:  src.CheckCount,
		LastChecked: src.LastChecked,
		LastUpdated: src.LastUpdated,
		LastError:   src.LastError,
	}
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"scheduler": s.scheduler.IsRunning(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// statsHandler returns scheduler and storage counters
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := s.scheduler.Stats(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to get stats: %v", err)
		renderError(w, r, errors.New("failed to get stats"), http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// listSourcesHandler returns all sources, or only active ones with ?active=true
func (s *Server) listSourcesHandler(w http.ResponseWriter, r *http.Request) {
	activeOnly, _ := strconv.ParseBool(r.URL.Query().Get("active"))
	sources, err := s.db.GetSources(r.Context(), activeOnly)
	if err != nil {
		log.Printf("[ERROR] failed to get sources: %v", err)
		renderError(w, r, errors.New("failed to get sources"), http.StatusInternalServerError)
		return
	}
	res := make([]sourceInfo, 0, len(sources))
	for i := range sources {
		res = append(res, newSourceInfo(&sources[i]))
	}
	renderJSON(w, r, http.StatusOK, res)
}

// checkSourceHandler runs an immediate check of a single source
func (s *Server) checkSourceHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid source ID"), http.StatusBadRequest)
		return
	}

	if _, err = s.db.GetSource(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			renderError(w, r, fmt.Errorf("source %d not found", id), http.StatusNotFound)
			return
		}
		log.Printf("[ERROR] failed to get source %d: %v", id, err)
		renderError(w, r, errors.New("failed to get source"), http.StatusInternalServerError)
		return
	}

	if !s.scheduler.ForceCheck(ctx, id) {
		renderError(w, r, fmt.Errorf("check of source %d failed", id), http.StatusInternalServerError)
		return
	}

	// reload to report the state written by the check
	src, err := s.db.GetSource(ctx, id)
	if err != nil {
		log.Printf("[WARN] failed to reload source %d: %v", id, err)
		renderJSON(w, r, http.StatusOK, map[string]interface{}{"checked": true})
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"checked": true, "source": newSourceInfo(src)})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
