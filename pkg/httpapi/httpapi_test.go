package httpapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gov-df/safedoc/pkg/policy"
)

func newTestServer() *Server {
	return &Server{Policy: policy.Default()}
}

func TestHandleTextoReturnsResult(t *testing.T) {
	s := newTestServer()
	mux := http.NewServeMux()
	s.Routes(mux)

	body, _ := json.Marshal(map[string]string{"texto": "Meu CPF é 390.533.447-05"})
	req := httptest.NewRequest(http.MethodPost, "/validate/texto", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEqual(t, "PUBLISH", result["status"])
}

func TestHandleTextoRejectsMalformedBody(t *testing.T) {
	s := newTestServer()
	mux := http.NewServeMux()
	s.Routes(mux)

	req := httptest.NewRequest(http.MethodPost, "/validate/texto", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCSVFindsTextColumnAndAnalyzesRows(t *testing.T) {
	s := newTestServer()
	mux := http.NewServeMux()
	s.Routes(mux)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("arquivo", "dados.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("id,descricao\n1,Meu CPF é 390.533.447-05\n2,sem nada aqui\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/validate/csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp csvResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Resultados, 2)
}

func TestHandleCSVReportsMissingTextColumn(t *testing.T) {
	s := newTestServer()
	mux := http.NewServeMux()
	s.Routes(mux)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("arquivo", "dados.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("id,valor\n1,10\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/validate/csv", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Nenhuma coluna de texto encontrada", result["erro"])
}

func TestHandleCSVRejectsNonMultipartUpload(t *testing.T) {
	s := newTestServer()
	mux := http.NewServeMux()
	s.Routes(mux)

	req := httptest.NewRequest(http.MethodPost, "/validate/csv", bytes.NewReader([]byte("not a file upload")))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
