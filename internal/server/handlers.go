package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pnlfolio/pnlfolio/internal/importer"
	"github.com/pnlfolio/pnlfolio/internal/report"
)

// maxUploadBytes caps the accepted log size.
const maxUploadBytes = 32 << 20

// handleReport parses a posted transaction log and returns the full
// report as JSON. The CSV arrives either as the raw request body or
// as a multipart "file" field; the format query parameter selects the
// parser (default deribit).
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "deribit"
	}
	parser := s.registry.Get(format)
	if parser == nil {
		writeJSONError(w, "unknown log format: "+format, http.StatusBadRequest)
		return
	}

	// An oversized upload must fail outright: a truncated log would
	// still parse and yield a complete-looking but wrong report.
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	body, err := uploadReader(r)
	if err != nil {
		s.log.Warn().Err(err).Msg("rejecting upload")
		if tooLarge(err) {
			writeJSONError(w, "transaction log exceeds size limit", http.StatusRequestEntityTooLarge)
			return
		}
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer body.Close()

	log, err := parser.Parse(body)
	if err != nil {
		if tooLarge(err) {
			s.log.Warn().Str("format", format).Msg("rejecting oversized upload")
			writeJSONError(w, "transaction log exceeds size limit", http.StatusRequestEntityTooLarge)
			return
		}
		parseFailures.Inc()
		s.log.Warn().Err(err).Str("format", format).Msg("parse failed")
		status := http.StatusInternalServerError
		if errors.Is(err, importer.ErrMalformedInput) {
			status = http.StatusUnprocessableEntity
		}
		writeJSONError(w, err.Error(), status)
		return
	}

	rep := report.Generate(log, s.opts)
	reportsGenerated.Inc()
	for _, warn := range rep.Warnings {
		s.log.Warn().Str("code", string(warn.Code)).Msg(warn.Message)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		s.log.Error().Err(err).Msg("encoding report")
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// uploadReader returns the CSV stream from a request: the multipart
// "file" field when present, otherwise the raw body.
func uploadReader(r *http.Request) (io.ReadCloser, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		return r.Body, nil
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, fmt.Errorf("parsing multipart form: %w", err)
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		return nil, errors.New("missing multipart field \"file\"")
	}
	return f, nil
}

// tooLarge reports whether err traces back to the request-body size
// cap, wherever in the read path it surfaced.
func tooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func writeJSONError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
