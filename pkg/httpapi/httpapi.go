// Package httpapi is the thin host adapter described in SPEC_FULL.md §6:
// a single-text endpoint and a tabular endpoint, both delegating every
// detection decision to pkg/engine and pkg/batch. It owns none of the
// core's semantics — only request parsing, column discovery, and
// response shaping.
package httpapi

import (
	"encoding/csv"
	"encoding/json"
	"net/http"

	"github.com/gov-df/safedoc/pkg/batch"
	"github.com/gov-df/safedoc/pkg/engine"
	"github.com/gov-df/safedoc/pkg/obs"
	"github.com/gov-df/safedoc/pkg/policy"
)

// Server holds the policy and logger every handler shares.
type Server struct {
	Policy policy.Policy
	Logger obs.Logger
}

// Routes registers the two collaborator endpoints on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /validate/texto", s.handleTexto)
	mux.HandleFunc("POST /validate/csv", s.handleCSV)
}

type textoRequest struct {
	Texto string `json:"texto"`
}

func (s *Server) handleTexto(w http.ResponseWriter, r *http.Request) {
	var req textoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "corpo da requisicao invalido")
		return
	}
	result := engine.Analyze(req.Texto, s.Policy)
	writeJSON(w, http.StatusOK, result)
}

type csvResponse struct {
	Total      int                `json:"total"`
	Resultados []batch.RowResult  `json:"resultados"`
}

func (s *Server) handleCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("arquivo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "upload nao e um arquivo tabular valido")
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		writeError(w, http.StatusBadRequest, "upload nao e um arquivo tabular valido")
		return
	}

	col := batch.FindTextColumn(header)
	if col == -1 {
		writeJSON(w, http.StatusOK, map[string]string{"erro": "Nenhuma coluna de texto encontrada"})
		return
	}

	var rows []batch.Row
	for i := 0; ; i++ {
		record, err := reader.Read()
		if err != nil {
			break
		}
		if col >= len(record) {
			continue
		}
		rows = append(rows, batch.Row{Index: i, Text: record[col]})
	}

	results, err := batch.AnalyzeTable(r.Context(), rows, batch.Options{
		Policy:  s.Policy,
		Memoize: true,
		Logger:  s.Logger,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "processamento interrompido")
		return
	}

	writeJSON(w, http.StatusOK, csvResponse{Total: len(results), Resultados: results})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"erro": msg})
}
