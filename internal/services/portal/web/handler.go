// Package web serves the portal HTML surface.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidemark/bluecarbon/internal/services/portal/app"
	"github.com/tidemark/bluecarbon/internal/web/flash"
	"github.com/tidemark/bluecarbon/internal/web/httpx"
	"github.com/tidemark/bluecarbon/internal/web/pagerender"
	"github.com/tidemark/bluecarbon/internal/web/weberror"
)

const maxUploadBytes = 16 << 20

// Handler holds the portal web dependencies.
type Handler struct {
	service *app.Service
}

// NewHandler builds the HTTP handler for the portal web server.
func NewHandler(service *app.Service) http.Handler {
	h := &Handler{service: service}
	mux := http.NewServeMux()
	mux.Handle("/", http.HandlerFunc(h.projects))
	mux.Handle("/projects", httpx.Chain(http.HandlerFunc(h.registerProject), httpx.RequireMethod(http.MethodPost)))
	mux.Handle("/upload", http.HandlerFunc(h.upload))
	mux.Handle("/credits", httpx.Chain(http.HandlerFunc(h.credits), httpx.RequireMethod(http.MethodGet)))
	mux.Handle("/complaints", http.HandlerFunc(h.complaints))
	return httpx.Chain(mux, httpx.RequestID(), httpx.RecoverPanic())
}

func (h *Handler) projects(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	projects, err := h.service.Projects(r.Context())
	if err != nil {
		weberror.Write(w, r, err)
		return
	}
	rows := make([]ProjectRow, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, ProjectRow{
			ID:        project.ID,
			Name:      project.Name,
			Location:  project.Location,
			CreatedAt: project.CreatedAt.UTC().Format(time.RFC3339),
			TxHash:    project.TxHash,
		})
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{Title: "Blue Carbon Portal", Body: projectsPage(rows)})
}

func (h *Handler) registerProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.Write(w, r, weberror.WithStatus(fmt.Errorf("parse form: %w", err), http.StatusBadRequest))
		return
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		weberror.Write(w, r, weberror.WithStatus(errors.New("project name is required"), http.StatusBadRequest))
		return
	}
	project, err := h.service.RegisterProject(r.Context(), name, r.FormValue("location"), r.FormValue("description"))
	if err != nil {
		weberror.Write(w, r, err)
		return
	}
	flash.Write(w, flash.Success(fmt.Sprintf("project %q registered with audit tag %s", project.Name, shortHash(project.TxHash))))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.uploadForm(w, r)
	case http.MethodPost:
		h.uploadSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) uploadForm(w http.ResponseWriter, r *http.Request) {
	options, err := h.projectOptions(r)
	if err != nil {
		weberror.Write(w, r, err)
		return
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{Title: "Upload proof", Body: uploadPage(options)})
}

func (h *Handler) uploadSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		weberror.Write(w, r, weberror.WithStatus(fmt.Errorf("parse upload form: %w", err), http.StatusBadRequest))
		return
	}
	projectID, err := parseProjectID(r.FormValue("project_id"))
	if err != nil {
		weberror.Write(w, r, weberror.WithStatus(err, http.StatusBadRequest))
		return
	}
	file, _, err := r.FormFile("proof")
	if err != nil {
		weberror.Write(w, r, weberror.WithStatus(errors.New("proof image is required"), http.StatusBadRequest))
		return
	}
	defer func() { _ = file.Close() }()

	outcome, err := h.service.VerifyImage(r.Context(), projectID, file)
	switch {
	case err == nil:
	case errors.Is(err, app.ErrProjectNotFound):
		weberror.Write(w, r, weberror.WithStatus(err, http.StatusBadRequest))
		return
	default:
		flash.Write(w, flash.Error(err.Error()))
		http.Redirect(w, r, "/upload", http.StatusSeeOther)
		return
	}

	if outcome.Verdict.Passed {
		flash.Write(w, flash.Success(fmt.Sprintf("proof verified: %.2f credits recorded", outcome.Credit.Credits)))
	} else {
		flash.Write(w, flash.Error(fmt.Sprintf("proof rejected: %s", outcome.Verdict.Reason)))
	}
	http.Redirect(w, r, "/credits", http.StatusSeeOther)
}

func (h *Handler) credits(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.CreditLedger(r.Context())
	if err != nil {
		weberror.Write(w, r, err)
		return
	}
	rows := make([]CreditRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, CreditRow{
			ID:          entry.Credit.ID,
			ProjectName: entry.ProjectName,
			DataType:    entry.Credit.DataType,
			Credits:     entry.Credit.Credits,
			Status:      entry.Credit.Status,
			Notes:       entry.Credit.Notes,
			Timestamp:   entry.Credit.Timestamp.UTC().Format(time.RFC3339),
			TxHash:      entry.Credit.TxHash,
		})
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{Title: "Credit ledger", Body: creditsPage(rows)})
}

func (h *Handler) complaints(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.complaintsList(w, r)
	case http.MethodPost:
		h.complaintsSubmit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h *Handler) complaintsList(w http.ResponseWriter, r *http.Request) {
	options, err := h.projectOptions(r)
	if err != nil {
		weberror.Write(w, r, err)
		return
	}
	entries, err := h.service.Complaints(r.Context())
	if err != nil {
		weberror.Write(w, r, err)
		return
	}
	rows := make([]ComplaintRow, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ComplaintRow{
			ID:          entry.Complaint.ID,
			ProjectName: entry.ProjectName,
			Complaint:   entry.Complaint.Complaint,
			Status:      entry.Complaint.Status,
			CreatedAt:   entry.Complaint.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	_ = pagerender.WritePage(w, r, pagerender.Page{Title: "Complaints", Body: complaintsPage(options, rows)})
}

func (h *Handler) complaintsSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		weberror.Write(w, r, weberror.WithStatus(fmt.Errorf("parse form: %w", err), http.StatusBadRequest))
		return
	}
	projectID, err := parseProjectID(r.FormValue("project_id"))
	if err != nil {
		weberror.Write(w, r, weberror.WithStatus(err, http.StatusBadRequest))
		return
	}
	body := strings.TrimSpace(r.FormValue("complaint"))
	if body == "" {
		weberror.Write(w, r, weberror.WithStatus(errors.New("complaint body is required"), http.StatusBadRequest))
		return
	}
	if _, err := h.service.FileComplaint(r.Context(), projectID, body); err != nil {
		if errors.Is(err, app.ErrProjectNotFound) {
			weberror.Write(w, r, weberror.WithStatus(err, http.StatusBadRequest))
			return
		}
		weberror.Write(w, r, err)
		return
	}
	flash.Write(w, flash.Success("complaint filed and pending review"))
	http.Redirect(w, r, "/complaints", http.StatusSeeOther)
}

func (h *Handler) projectOptions(r *http.Request) ([]ProjectOption, error) {
	projects, err := h.service.Projects(r.Context())
	if err != nil {
		return nil, err
	}
	options := make([]ProjectOption, 0, len(projects))
	for _, project := range projects {
		options = append(options, ProjectOption{ID: project.ID, Name: project.Name})
	}
	return options, nil
}

func parseProjectID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid project id %q", raw)
	}
	return id, nil
}

func shortHash(txHash string) string {
	if len(txHash) <= 12 {
		return txHash
	}
	return txHash[:12] + "..."
}
