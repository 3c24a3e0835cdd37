package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"WireRing/internal/calc/brand"
	"WireRing/internal/calc/wire"
	"WireRing/internal/form"
	"WireRing/internal/report"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	MaxUploadSize = 10 << 20 // 10MB
	MaxBatchItems = 500
)

type BatchInput struct {
	Items []form.Request `json:"items"`
}

type BatchResult struct {
	Results []form.State `json:"results"`
}

type ImportResult struct {
	Count   int          `json:"count"`
	Results []form.State `json:"results"`
}

type ReportInput struct {
	form.Request
	report.Meta
}

type Handler struct {
	Log *zap.Logger
}

func (h *Handler) logger(r *http.Request) *zap.Logger {
	l := h.Log
	if l == nil {
		l = zap.NewNop()
	}
	return l.With(zap.String("request_id", requestID(r.Context())))
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input form.Request
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writeJSON(w, form.Evaluate(input, form.WithLogger(h.logger(r))))
}

func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	var input BatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "No items", http.StatusBadRequest)
		return
	}
	if len(input.Items) > MaxBatchItems {
		http.Error(w, "Too many items", http.StatusBadRequest)
		return
	}
	writeJSON(w, BatchResult{Results: evaluateAll(input.Items)})
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			http.Error(w, "File too big", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	reqs, err := report.ReadXLSX(file)
	if err != nil {
		h.logger(r).Info("import rejected", zap.Error(err))
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	results := evaluateAll(reqs)
	writeJSON(w, ImportResult{Count: len(results), Results: results})
}

func (h *Handler) ReportPDF(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "application/pdf", "wire-ring.pdf", report.WritePDF)
}

func (h *Handler) ReportXLSX(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "wire-ring.xlsx", report.WriteXLSX)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request, contentType, filename string, write func(io.Writer, report.Meta, form.State) error) {
	var input ReportInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	st := form.Evaluate(input.Request, form.WithLogger(h.logger(r)))

	// Rendered to a buffer so a failure can still produce a clean 500.
	var buf bytes.Buffer
	if err := write(&buf, input.Meta, st); err != nil {
		h.logger(r).Error("report generation failed", zap.Error(err))
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filename+"\"")
	w.Write(buf.Bytes())
}

func (h *Handler) Brands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, brand.Brands())
}

type brandDetail struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	BendHeightMM float64           `json:"bend_height_mm"`
	Partitions   []brand.SizeEntry `json:"partitions"`
}

func (h *Handler) Brand(w http.ResponseWriter, r *http.Request) {
	b, ok := brand.Lookup(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Brand not found", http.StatusNotFound)
		return
	}
	writeJSON(w, brandDetail{ID: b.ID, Name: b.Name, BendHeightMM: b.BendHeightMM, Partitions: b.Partitions})
}

func (h *Handler) Formulas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, wire.Formulas())
}

func evaluateAll(reqs []form.Request) []form.State {
	out := make([]form.State, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, form.Evaluate(req))
	}
	return out
}

// writeJSON encodes before touching the response so an encoding failure
// still yields a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "Response encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(buf.Bytes())
}
