package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tradelens/tradelens/internal/domain"
	"github.com/tradelens/tradelens/internal/ingest"
)

// maxUploadBytes caps the size of uploaded trade exports.
const maxUploadBytes = 32 << 20 // 32MB

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "healthy",
		"version": "1.0.0",
		"service": "tradelens",
	}

	s.writeJSON(w, http.StatusOK, response)
}

// handleAnalysis accepts a broker trade export (CSV) and returns the full
// analysis result. Optional query parameters:
//
//	start   - inclusive lower bound on trade date (YYYY-MM-DD)
//	end     - inclusive upper bound on trade date (YYYY-MM-DD)
//	symbols - comma-separated symbol filter
func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.readLedger(w, r)
	if !ok {
		return
	}

	ledger, ok = s.applyFilters(w, r, ledger)
	if !ok {
		return
	}

	result := s.analytics.Analyze(ledger)
	s.writeJSON(w, http.StatusOK, result)
}

// handleHoldings accepts a broker trade export (CSV) and returns currently
// open positions valued at live market prices.
func (s *Server) handleHoldings(w http.ResponseWriter, r *http.Request) {
	ledger, ok := s.readLedger(w, r)
	if !ok {
		return
	}

	summary := s.holdings.Valuate(ledger)
	s.writeJSON(w, http.StatusOK, summary)
}

// readLedger extracts the CSV payload from the request, parses and
// normalizes it. Accepts either a multipart form with a "file" field or a
// raw CSV request body. Writes an error response and returns ok=false on
// failure.
func (s *Server) readLedger(w http.ResponseWriter, r *http.Request) (domain.Ledger, bool) {
	body, err := s.csvReader(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	defer body.Close()

	rows, err := ingest.ReadCSV(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read CSV: %v", err))
		return nil, false
	}

	ledger, err := ingest.Normalize(rows)
	if err != nil {
		var dateErr *domain.MalformedDateError
		if errors.As(err, &dateErr) {
			s.writeError(w, http.StatusBadRequest, dateErr.Error())
			return nil, false
		}
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to normalize trades: %v", err))
		return nil, false
	}

	return ledger, true
}

// csvReader returns the CSV payload stream for the request.
func (s *Server) csvReader(r *http.Request) (io.ReadCloser, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, fmt.Errorf("failed to parse multipart form: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("missing \"file\" form field: %w", err)
		}
		return file, nil
	}

	return r.Body, nil
}

// applyFilters narrows the ledger by the request's start/end/symbols query
// parameters. Writes an error response and returns ok=false when a date
// parameter is malformed.
func (s *Server) applyFilters(w http.ResponseWriter, r *http.Request, ledger domain.Ledger) (domain.Ledger, bool) {
	var start, end *time.Time

	if v := r.URL.Query().Get("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid start date %q, expected YYYY-MM-DD", v))
			return nil, false
		}
		start = &t
	}

	if v := r.URL.Query().Get("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid end date %q, expected YYYY-MM-DD", v))
			return nil, false
		}
		end = &t
	}

	ledger = ingest.FilterByDateRange(ledger, start, end)

	if v := r.URL.Query().Get("symbols"); v != "" {
		var symbols []string
		for _, sym := range strings.Split(v, ",") {
			if sym = strings.TrimSpace(sym); sym != "" {
				symbols = append(symbols, sym)
			}
		}
		ledger = ingest.FilterBySymbols(ledger, symbols)
	}

	return ledger, true
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
