package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tidemark/bluecarbon/internal/services/portal/storage"
	"github.com/tidemark/bluecarbon/internal/services/portal/storage/sqlite"
)

func openTempStore(t *testing.T) *sqlite.Store {
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
	return store
}

func openTempService(t *testing.T) *Service {
	t.Helper()
	return New(openTempStore(t))
}

func checkerboardPNG(t *testing.T, size int) *bytes.Reader {
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
	return bytes.NewReader(buf.Bytes())
}

func uniformPNG(t *testing.T, size int) *bytes.Reader {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, size, size))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestRegisterProjectAssignsTagAtCreation(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)

	project, err := svc.RegisterProject(context.Background(), "Mangrove Bay", "Gulf coast", "Restoration pilot")
	if err != nil {
		t.Fatalf("register project: %v", err)
	}
	if project.ID == 0 {
		t.Error("project id not assigned")
	}
	if len(project.UUID) != 36 {
		t.Errorf("uuid = %q, want canonical form", project.UUID)
	}
	if len(project.TxHash) != 64 {
		t.Errorf("tx hash = %q, want sha-256 hex at creation", project.TxHash)
	}
}

func TestRegisterProjectRequiresName(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	if _, err := svc.RegisterProject(context.Background(), "  ", "", ""); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestVerifyImagePassesWithVarianceCredits(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	ctx := context.Background()

	project, err := svc.RegisterProject(ctx, "Mangrove Bay", "", "")
	if err != nil {
		t.Fatalf("register project: %v", err)
	}

	outcome, err := svc.VerifyImage(ctx, project.ID, checkerboardPNG(t, 200))
	if err != nil {
		t.Fatalf("verify image: %v", err)
	}
	if !outcome.Verdict.Passed {
		t.Fatalf("verdict rejected: %s", outcome.Verdict.Reason)
	}
	// Checkerboard variance is 16256.25, so round(variance)/100 = 162.56.
	if outcome.Credit.Credits != 162.56 {
		t.Errorf("credits = %v, want 162.56", outcome.Credit.Credits)
	}
	if outcome.Credit.Status != "verified" {
		t.Errorf("status = %q, want verified", outcome.Credit.Status)
	}
	if len(outcome.Credit.TxHash) != 64 {
		t.Errorf("tx hash = %q, want tag at creation", outcome.Credit.TxHash)
	}
}

func TestVerifyImageRejectedPersistsZeroCredits(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	ctx := context.Background()

	outcome, err := svc.VerifyImage(ctx, 0, uniformPNG(t, 200))
	if err != nil {
		t.Fatalf("verify image: %v", err)
	}
	if outcome.Verdict.Passed {
		t.Fatal("uniform image passed verification")
	}
	if outcome.Credit.Credits != 0 {
		t.Errorf("credits = %v, want 0", outcome.Credit.Credits)
	}
	if outcome.Credit.Status != "rejected" {
		t.Errorf("status = %q, want rejected", outcome.Credit.Status)
	}

	ledger, err := svc.CreditLedger(ctx)
	if err != nil {
		t.Fatalf("credit ledger: %v", err)
	}
	if len(ledger) != 1 {
		t.Fatalf("got %d entries, want rejected outcome persisted", len(ledger))
	}
	if ledger[0].ProjectName != "" {
		t.Errorf("project name = %q, want empty for detached credit", ledger[0].ProjectName)
	}
}

func TestVerifyImageUnknownProject(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	if _, err := svc.VerifyImage(context.Background(), 42, checkerboardPNG(t, 100)); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestVerifyImageDecodeFailurePersistsNothing(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	ctx := context.Background()

	if _, err := svc.VerifyImage(ctx, 0, strings.NewReader("not an image")); err == nil {
		t.Fatal("expected decode error")
	}
	ledger, err := svc.CreditLedger(ctx)
	if err != nil {
		t.Fatalf("credit ledger: %v", err)
	}
	if len(ledger) != 0 {
		t.Fatalf("got %d entries, want none after decode failure", len(ledger))
	}
}

func TestFileComplaint(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	fixed := time.Date(2026, time.April, 2, 15, 0, 0, 0, time.UTC)
	svc.WithClock(func() time.Time { return fixed })
	ctx := context.Background()

	project, err := svc.RegisterProject(ctx, "Mangrove Bay", "", "")
	if err != nil {
		t.Fatalf("register project: %v", err)
	}
	complaint, err := svc.FileComplaint(ctx, project.ID, "dredging observed at the north channel")
	if err != nil {
		t.Fatalf("file complaint: %v", err)
	}
	if complaint.Status != ComplaintStatusPending {
		t.Errorf("status = %q, want pending", complaint.Status)
	}
	if !complaint.CreatedAt.Equal(fixed) {
		t.Errorf("created at = %v, want %v", complaint.CreatedAt, fixed)
	}

	entries, err := svc.Complaints(ctx)
	if err != nil {
		t.Fatalf("complaints: %v", err)
	}
	if len(entries) != 1 || entries[0].ProjectName != "Mangrove Bay" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestFileComplaintValidation(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	ctx := context.Background()

	if _, err := svc.FileComplaint(ctx, 0, "   "); err == nil {
		t.Error("expected error for blank body")
	}
	if _, err := svc.FileComplaint(ctx, 7, "body"); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("err = %v, want ErrProjectNotFound", err)
	}
}

func TestCreditLedgerNewestFirst(t *testing.T) {
	t.Parallel()
	svc := openTempService(t)
	ctx := context.Background()

	project, err := svc.RegisterProject(ctx, "Mangrove Bay", "", "")
	if err != nil {
		t.Fatalf("register project: %v", err)
	}
	if _, err := svc.VerifyImage(ctx, project.ID, uniformPNG(t, 200)); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	second, err := svc.VerifyImage(ctx, project.ID, checkerboardPNG(t, 200))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}

	ledger, err := svc.CreditLedger(ctx)
	if err != nil {
		t.Fatalf("credit ledger: %v", err)
	}
	if len(ledger) != 2 {
		t.Fatalf("got %d entries, want 2", len(ledger))
	}
	if ledger[0].Credit.ID != second.Credit.ID {
		t.Errorf("newest entry = %d, want %d", ledger[0].Credit.ID, second.Credit.ID)
	}
	if ledger[0].ProjectName != "Mangrove Bay" {
		t.Errorf("project name = %q", ledger[0].ProjectName)
	}
}

func TestCreditLedgerToleratesMissingProject(t *testing.T) {
	t.Parallel()
	store := openTempStore(t)
	svc := New(store)
	ctx := context.Background()

	if _, err := svc.VerifyImage(ctx, 0, checkerboardPNG(t, 200)); err != nil {
		t.Fatalf("detached upload: %v", err)
	}
	// Rows can outlive their project; listings must not break on them.
	if _, err := store.SaveCredit(ctx, storage.Credit{
		UUID:      "dangling-credit",
		ProjectID: 42,
		DataType:  "image",
		Credits:   10,
		Status:    "verified",
		Timestamp: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("save dangling credit: %v", err)
	}

	ledger, err := svc.CreditLedger(ctx)
	if err != nil {
		t.Fatalf("credit ledger: %v", err)
	}
	if len(ledger) != 2 {
		t.Fatalf("got %d entries, want 2", len(ledger))
	}
	for _, entry := range ledger {
		if entry.ProjectName != "" {
			t.Errorf("project name = %q, want empty for orphaned credit %d", entry.ProjectName, entry.Credit.ID)
		}
	}
}

func TestComplaintsTolerateMissingProject(t *testing.T) {
	t.Parallel()
	store := openTempStore(t)
	svc := New(store)
	ctx := context.Background()

	if _, err := svc.FileComplaint(ctx, 0, "general grievance"); err != nil {
		t.Fatalf("detached complaint: %v", err)
	}
	if _, err := store.SaveComplaint(ctx, storage.Complaint{
		UUID:      "dangling-complaint",
		ProjectID: 42,
		Complaint: "project vanished",
		Status:    "pending",
		CreatedAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}); err != nil {
		t.Fatalf("save dangling complaint: %v", err)
	}

	complaints, err := svc.Complaints(ctx)
	if err != nil {
		t.Fatalf("complaints: %v", err)
	}
	if len(complaints) != 2 {
		t.Fatalf("got %d entries, want 2", len(complaints))
	}
	for _, entry := range complaints {
		if entry.ProjectName != "" {
			t.Errorf("project name = %q, want empty for orphaned complaint %d", entry.ProjectName, entry.Complaint.ID)
		}
	}
}
