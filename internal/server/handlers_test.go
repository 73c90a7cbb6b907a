package server

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradelens/tradelens/internal/domain"
	"github.com/tradelens/tradelens/internal/modules/analytics"
	"github.com/tradelens/tradelens/internal/modules/holdings"
)

const sampleCSV = `TradeDate,Symbol,Quantity,TradePrice,FifoPnlRealized,IBCommission
2024-01-01,AAPL,10,100,0,-1
2024-01-03,AAPL,-10,110,100,-1
2024-01-05,MSFT,5,200,0,-1
2024-01-08,MSFT,-5,190,-50,-1
2024-02-05,TSLA,2,300,0,-1
`

type stubQuoteProvider struct {
	quotes map[string]*domain.SecurityQuote
}

func (p *stubQuoteProvider) Lookup(symbol string) (*domain.SecurityQuote, error) {
	if q, ok := p.quotes[symbol]; ok {
		return q, nil
	}
	return nil, assert.AnError
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	log := zerolog.New(io.Discard)
	quotes := &stubQuoteProvider{quotes: map[string]*domain.SecurityQuote{
		"TSLA": {LastPrice: 320, Sector: "Consumer Cyclical", Industry: "Auto Manufacturers"},
	}}

	return New(Config{
		Port:      0,
		Log:       log,
		Analytics: analytics.NewService(log),
		Holdings:  holdings.NewService(quotes, 2, log),
		DevMode:   true,
	})
}

func postCSV(t *testing.T, srv *Server, path, csv string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "tradelens", body["service"])
}

func TestHandleAnalysis_RawBody(t *testing.T) {
	srv := newTestServer(t)

	rec := postCSV(t, srv, "/api/analysis", sampleCSV)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, float64(2), body["total_trades"])
	assert.Equal(t, float64(1), body["num_wins"])
	assert.Equal(t, float64(1), body["num_losses"])
	assert.Equal(t, float64(0), body["num_breakeven"])
	assert.InDelta(t, 45.0, body["total_pnl_net"], 1e-9) // 100 - 50 - 5 fees
	assert.NotEmpty(t, body["run_id"])
	assert.ElementsMatch(t, []interface{}{"AAPL", "MSFT", "TSLA"},
		body["symbols"].([]interface{}))
}

func TestHandleAnalysis_MultipartUpload(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "trades.csv")
	require.NoError(t, err)
	_, err = io.WriteString(fw, sampleCSV)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analysis", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["total_trades"])
}

func TestHandleAnalysis_DateRangeFilter(t *testing.T) {
	srv := newTestServer(t)

	rec := postCSV(t, srv, "/api/analysis?start=2024-01-01&end=2024-01-31", sampleCSV)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// February's TSLA buy is excluded.
	assert.ElementsMatch(t, []interface{}{"AAPL", "MSFT"},
		body["symbols"].([]interface{}))
}

func TestHandleAnalysis_SymbolFilter(t *testing.T) {
	srv := newTestServer(t)

	rec := postCSV(t, srv, "/api/analysis?symbols=AAPL,%20TSLA", sampleCSV)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.ElementsMatch(t, []interface{}{"AAPL", "TSLA"},
		body["symbols"].([]interface{}))
	assert.Equal(t, float64(1), body["total_trades"])
}

func TestHandleAnalysis_InvalidStartDate(t *testing.T) {
	srv := newTestServer(t)

	rec := postCSV(t, srv, "/api/analysis?start=January", sampleCSV)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "invalid start date")
}

func TestHandleAnalysis_MalformedTradeDate(t *testing.T) {
	srv := newTestServer(t)

	csv := "TradeDate,Symbol,Quantity,TradePrice,FifoPnlRealized,IBCommission\n" +
		"yesterday,AAPL,10,100,0,-1\n"

	rec := postCSV(t, srv, "/api/analysis", csv)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "yesterday")
}

func TestHandleAnalysis_EmptyBody(t *testing.T) {
	srv := newTestServer(t)

	rec := postCSV(t, srv, "/api/analysis", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHoldings(t *testing.T) {
	srv := newTestServer(t)

	rec := postCSV(t, srv, "/api/holdings", sampleCSV)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary holdings.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))

	// AAPL and MSFT are fully closed; only the TSLA position remains open.
	require.Len(t, summary.Holdings, 1)
	h := summary.Holdings[0]
	assert.Equal(t, "TSLA", h.Symbol)
	assert.Equal(t, 2.0, h.Quantity)
	assert.Equal(t, 320.0, h.CurrentPrice)
	assert.Equal(t, "Consumer Cyclical", h.Sector)
	assert.InDelta(t, 640.0, summary.TotalMarketValue, 1e-9)
}

func TestHandleSystemStatus(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/system/status", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status SystemStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "running", status.Status)
	assert.Greater(t, status.Goroutines, 0)
}
