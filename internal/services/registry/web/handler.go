// Package web serves the registry HTML surface.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tidemark/bluecarbon/internal/services/registry/app"
	"github.com/tidemark/bluecarbon/internal/web/flash"
	"github.com/tidemark/bluecarbon/internal/web/httpx"
	"github.com/tidemark/bluecarbon/internal/web/pagerender"
	"github.com/tidemark/bluecarbon/internal/web/weberror"
)

// maxUploadBytes caps artifact size; monitoring uploads are small.
const maxUploadBytes = 16 << 20

// Handler holds the registry web dependencies.
type Handler struct {
	service *app.Service
}

// NewHandler builds the HTTP handler for the registry web server.
func NewHandler(service *app.Service) http.Handler {
	h := &Handler{service: service}
	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(h.home))
	mux.Handle("/records", httpx.Chain(http.HandlerFunc(h.submitRecord), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/issue", httpx.Chain(http.HandlerFunc(h.issue), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/export.csv", httpx.Chain(http.HandlerFunc(h.exportCSV), httpx.RequireMethod(http.MethodGet)))
	return httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic())
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	records, err := h.service.Records(r.Context())
	if err != nil {
		weberror.Write(w, r, err)
		return
	}
	view := RecordsPageView{Rows: make([]RecordRow, 0, len(records))}
	for _, record := range records {
		view.Rows = append(view.Rows, RecordRow{
			ID:          record.ID,
			RecordUUID:  record.RecordUUID,
			CreatedAt:   record.CreatedAt.UTC().Format(time.RFC3339),
			ProjectName: record.ProjectName,
			DataType:    record.DataType,
			Credits:     record.Credits,
			MRVStatus:   record.MRVStatus,
			MRVMsg:      record.MRVMsg,
			TxHash:      record.TxHash,
		})
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{
		Title: "Blue Carbon Registry",
		Body:  recordsPage(view),
	})
}

func (h *Handler) submitRecord(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		weberror.Write(w, r, weberror.WithStatus(fmt.Errorf("parse upload form: %w", err), http.StatusBadRequest))
		return
	}
	projectName := r.FormValue("project_name")
	if projectName == "" {
		weberror.Write(w, r, weberror.WithStatus(errors.New("project name is required"), http.StatusBadRequest))
		return
	}
	file, header, err := r.FormFile("artifact")
	if err != nil {
		weberror.Write(w, r, weberror.WithStatus(errors.New("artifact file is required"), http.StatusBadRequest))
		return
	}
	defer func() { _ = file.Close() }()

	outcome, err := h.service.VerifyUpload(r.Context(), projectName, header.Filename, file)
	switch {
	case err == nil:
	case errors.Is(err, app.ErrUnsupportedUpload):
		weberror.Write(w, r, weberror.WithStatus(err, http.StatusBadRequest))
		return
	default:
		// Undecodable artifacts never reach the store; report and move on.
		flash.Write(w, flash.Error(err.Error()))
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if outcome.Verdict.Passed {
		flash.Write(w, flash.Success(fmt.Sprintf("record %s verified: %d credits estimated", outcome.Record.RecordUUID, outcome.Record.Credits)))
	} else {
		flash.Write(w, flash.Error(fmt.Sprintf("record %s rejected: %s", outcome.Record.RecordUUID, outcome.Verdict.Reason)))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.IssueLatest(r.Context())
	switch {
	case err == nil:
		flash.Write(w, flash.Success(fmt.Sprintf("issued %d credits for record %s (tx %s)", record.Credits, record.RecordUUID, shortHash(record.TxHash))))
	case errors.Is(err, app.ErrNoIssuableRecord):
		flash.Write(w, flash.Info("no verified record is waiting for issuance"))
	default:
		weberror.Write(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), &buf); err != nil {
		weberror.Write(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="registry.csv"`)
	_, _ = w.Write(buf.Bytes())
}

func shortHash(txHash string) string {
	if len(txHash) <= 12 {
		return txHash
	}
	return txHash[:12] + "..."
}
