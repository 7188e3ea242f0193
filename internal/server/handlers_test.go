package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pnlfolio/pnlfolio/internal/importer"
	"github.com/pnlfolio/pnlfolio/internal/report"
)

const sampleCSV = "Date,Type,Cash Flow,Fee Charged,Index Price\n" +
	"2025-01-01T00:00:00,trade,10,1,100\n" +
	"2025-01-01T01:00:00,trade,-4,1,0\n" +
	"2025-01-02T00:00:00,deposit,500,0,110\n"

func testServer() *Server {
	return New(importer.DefaultRegistry(), report.DefaultOptions(), zerolog.Nop())
}

func TestHandleReport_RawBody(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(sampleCSV))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rep report.Report
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rep))

	assert.Equal(t, "4", rep.Summary.TotalNet.String())
	assert.Equal(t, "100", rep.Summary.PriceReference.String())
	assert.Equal(t, "400", rep.Summary.TotalNetFiat.String())
	assert.Equal(t, 2, rep.Summary.TotalTrades)
	require.Len(t, rep.Daily, 1)
	assert.Equal(t, "2025-01-01", rep.Daily[0].Label)
}

func TestHandleReport_Multipart(t *testing.T) {
	srv := testServer()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "log.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/report", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rep report.Report
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rep))
	assert.Equal(t, "4", rep.Summary.TotalNet.String())
}

func TestHandleReport_Malformed(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader("Date,Cash Flow\nNOTADATE,1\n"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "unparsable date")
}

func TestHandleReport_OversizedBodyRejected(t *testing.T) {
	srv := testServer()
	srv.maxUpload = 64

	// Rows past the cap would be silently dropped if the body were
	// merely truncated; the upload must fail as a whole instead.
	body := "Date,Type,Cash Flow,Fee Charged,Index Price\n"
	for i := 0; i < 10; i++ {
		body += "2025-01-01T00:00:00,trade,1000,0,100\n"
	}

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp["error"], "size limit")
}

func TestHandleReport_OversizedMultipartRejected(t *testing.T) {
	srv := testServer()
	srv.maxUpload = 64

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "log.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(sampleCSV))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/report", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleReport_UnknownFormat(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/report?format=nope", strings.NewReader(sampleCSV))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleReport_WarningsIncluded(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodPost, "/api/report", strings.NewReader("Date,Cash Flow\n2025-01-01T00:00:00,1\n"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var rep report.Report
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rep))
	require.Len(t, rep.Warnings, 2)
}

func TestHandleHealthz(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
