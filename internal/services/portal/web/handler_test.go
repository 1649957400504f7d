package web

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidemark/bluecarbon/internal/services/portal/app"
	"github.com/tidemark/bluecarbon/internal/services/portal/storage/sqlite"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "portal.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return NewHandler(app.New(store))
}

func registerProject(t *testing.T, handler http.Handler, name string) {
	t.Helper()
	form := url.Values{"name": {name}, "location": {"Gulf coast"}}
	r := httptest.NewRequest("POST", "/projects", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("register status = %d: %s", w.Code, w.Body.String())
	}
}

func proofUpload(t *testing.T, projectID string, payload []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if projectID != "" {
		if err := form.WriteField("project_id", projectID); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	part, err := form.CreateFormFile("proof", "proof.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	r := httptest.NewRequest("POST", "/upload", &body)
	r.Header.Set("Content-Type", form.FormDataContentType())
	return r
}

func checkerboardPNG(t *testing.T, size int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestProjectsPageEmpty(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)

	w := get(t, handler, "/")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No projects registered yet.") {
		t.Error("empty placeholder missing")
	}
}

func TestRegisterProjectFlow(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)
	registerProject(t, handler, "Mangrove Bay")

	w := get(t, handler, "/")
	body := w.Body.String()
	if !strings.Contains(body, "Mangrove Bay") {
		t.Error("registered project missing from table")
	}
	if !strings.Contains(body, "<code>") {
		t.Error("audit tag missing from table")
	}
}

func TestRegisterProjectRequiresName(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)

	r := httptest.NewRequest("POST", "/projects", strings.NewReader("name="))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUploadFormListsProjects(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)
	registerProject(t, handler, "Delta Flux")

	w := get(t, handler, "/upload")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Delta Flux") {
		t.Error("project option missing from upload form")
	}
}

func TestUploadVerifiedLandsInLedger(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)
	registerProject(t, handler, "Mangrove Bay")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, proofUpload(t, "1", checkerboardPNG(t, 200)))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("upload status = %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != "/credits" {
		t.Errorf("redirect = %q, want /credits", got)
	}

	ledger := get(t, handler, "/credits")
	body := ledger.Body.String()
	if !strings.Contains(body, "162.56") {
		t.Errorf("variance credits missing from ledger: %q", body)
	}
	if !strings.Contains(body, "Mangrove Bay") {
		t.Error("project name missing from ledger")
	}
}

func TestCreditLedgerLocalizesNumbersAndCopy(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)
	registerProject(t, handler, "Mangrove Bay")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, proofUpload(t, "1", checkerboardPNG(t, 200)))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("upload status = %d: %s", w.Code, w.Body.String())
	}

	ledger := get(t, handler, "/credits?lang=es")
	body := ledger.Body.String()
	if !strings.Contains(body, `<html lang="es">`) {
		t.Error("lang attribute not switched to es")
	}
	if !strings.Contains(body, "Libro de créditos") {
		t.Error("Spanish ledger heading missing")
	}
	if !strings.Contains(body, "162,56") {
		t.Errorf("credits not formatted with Spanish decimal separator: %q", body)
	}

	englishLedger := get(t, handler, "/credits")
	if !strings.Contains(englishLedger.Body.String(), "162.56") {
		t.Error("credits not formatted with English decimal separator")
	}
}

func TestUploadRejectedRecordsZero(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)

	img := image.NewGray(image.Rect(0, 0, 200, 200))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, proofUpload(t, "", buf.Bytes()))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("upload status = %d", w.Code)
	}

	ledger := get(t, handler, "/credits")
	body := ledger.Body.String()
	if !strings.Contains(body, "rejected") {
		t.Error("rejected row missing from ledger")
	}
	if !strings.Contains(body, "0.00") {
		t.Error("zero credits missing from ledger")
	}
}

func TestUploadUnknownProject(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, proofUpload(t, "42", checkerboardPNG(t, 100)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUploadUndecodableRedirectsWithError(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, proofUpload(t, "", []byte("not a png")))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/upload" {
		t.Errorf("redirect = %q, want /upload", got)
	}

	ledger := get(t, handler, "/credits")
	if !strings.Contains(ledger.Body.String(), "No credits recorded yet.") {
		t.Error("undecodable upload should not produce a ledger entry")
	}
}

func TestComplaintFlow(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)
	registerProject(t, handler, "Mangrove Bay")

	form := url.Values{"project_id": {"1"}, "complaint": {"dredging observed"}}
	r := httptest.NewRequest("POST", "/complaints", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("complaint status = %d", w.Code)
	}

	list := get(t, handler, "/complaints")
	body := list.Body.String()
	if !strings.Contains(body, "dredging observed") {
		t.Error("complaint missing from list")
	}
	if !strings.Contains(body, "pending") {
		t.Error("pending status missing from list")
	}
}

func TestComplaintRequiresBody(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)

	r := httptest.NewRequest("POST", "/complaints", strings.NewReader("complaint="))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestUnknownPath(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t)
	if w := get(t, handler, "/nope"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
