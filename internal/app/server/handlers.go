package server

import (
	"encoding/json"
	"io"
	"net/http"

	"shade/internal/app/errors"
	"shade/internal/app/theme"
	"shade/internal/config"
)

const (
	contentTypeJSON = "application/json"
	contentTypeCSS  = "text/css; charset=utf-8"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleStylesheet renders the active theme, query values override it for this request only
func (s *server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	sheet, settings, err := s.store.Stylesheet(queryOverrides(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.metrics.stylesheets.WithLabelValues(settings.Mode.String()).Inc()

	w.Header().Set("Content-Type", contentTypeCSS)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := sheet.WriteTo(w); err != nil {
		s.log.Warn().Err(err).Msg("Failed to write stylesheet")
	}
}

func (s *server) handlePalette(w http.ResponseWriter, r *http.Request) {
	p, settings, err := s.store.Palette(queryOverrides(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, theme.NewReport(settings, p))
}

func (s *server) handleGetColors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Current())
}

func (s *server) handleUpdateColors(w http.ResponseWriter, r *http.Request) {
	var change theme.Overrides

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, config.MaxRequestBody))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&change); err != nil {
		if err == io.EOF {
			err = errors.New("empty body")
		}

		s.writeError(w, errors.Join(errors.ErrInvalidRequest, err))

		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		s.writeError(w, errors.Join(errors.ErrInvalidRequest, errors.New("trailing data after json object")))

		return
	}

	settings, err := s.store.Update(change)
	if err != nil {
		s.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

func (s *server) handleRevertColors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Revert())
}

func queryOverrides(r *http.Request) theme.Overrides {
	q := r.URL.Query()

	return theme.Overrides{
		Background: q.Get("background"),
		Accent:     q.Get("accent"),
		Mode:       q.Get("mode"),
	}
}

// writeError maps bad input to 400 and everything else to 500
func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errors.ErrInvalidColor):
		s.metrics.colorParseErrors.Inc()
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrInvalidMode), errors.Is(err, errors.ErrInvalidRequest):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("Request failed")
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
