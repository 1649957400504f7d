package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/tidemark/bluecarbon/internal/services/registry/storage"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func saveTestRecord(t *testing.T, store *Store, uuid, status, txHash string) storage.Record {
	t.Helper()
	record, err := store.SaveRecord(context.Background(), storage.Record{
		RecordUUID:  uuid,
		CreatedAt:   time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
		ProjectName: "Demo Mangrove Project",
		DataType:    "image",
		Credits:     2,
		MRVStatus:   status,
		MRVMsg:      "image passes basic checks (variance=120.5)",
		TxHash:      txHash,
	})
	if err != nil {
		t.Fatalf("save record %s: %v", uuid, err)
	}
	return record
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestSaveAndListRecordsRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	saved := saveTestRecord(t, store, "uuid-1", "verified", "")
	if saved.ID == 0 {
		t.Fatal("expected assigned row id")
	}

	records, err := store.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	got := records[0]
	if got.RecordUUID != "uuid-1" {
		t.Fatalf("record_uuid = %q, want %q", got.RecordUUID, "uuid-1")
	}
	if got.ProjectName != "Demo Mangrove Project" {
		t.Fatalf("project_name = %q, want %q", got.ProjectName, "Demo Mangrove Project")
	}
	if got.Credits != 2 {
		t.Fatalf("credits = %d, want 2", got.Credits)
	}
	if !got.CreatedAt.Equal(saved.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, saved.CreatedAt)
	}
	if got.TxHash != "" {
		t.Fatalf("tx_hash = %q, want empty", got.TxHash)
	}
}

func TestListRecordsReturnsNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	saveTestRecord(t, store, "uuid-old", "verified", "")
	saveTestRecord(t, store, "uuid-new", "rejected", "")

	records, err := store.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	if records[0].RecordUUID != "uuid-new" {
		t.Fatalf("first record = %q, want newest", records[0].RecordUUID)
	}
}

func TestSaveRecordRejectsNegativeCredits(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	_, err := store.SaveRecord(context.Background(), storage.Record{
		RecordUUID: "uuid-neg",
		DataType:   "image",
		Credits:    -1,
		MRVStatus:  "verified",
	})
	if err == nil {
		t.Fatal("expected negative credits error")
	}
}

func TestLatestIssuableSkipsRejectedAndIssued(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	wanted := saveTestRecord(t, store, "uuid-issuable", "verified", "")
	saveTestRecord(t, store, "uuid-rejected", "rejected", "")
	saveTestRecord(t, store, "uuid-issued", "verified", "deadbeef")

	got, err := store.LatestIssuable(context.Background())
	if err != nil {
		t.Fatalf("latest issuable: %v", err)
	}
	if got.ID != wanted.ID {
		t.Fatalf("latest issuable id = %d, want %d", got.ID, wanted.ID)
	}
}

func TestLatestIssuableReturnsNotFoundWhenNoneExists(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	saveTestRecord(t, store, "uuid-rejected", "rejected", "")

	_, err := store.LatestIssuable(context.Background())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("latest issuable error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestAssignTxHashIsWriteOnce(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	record := saveTestRecord(t, store, "uuid-once", "verified", "")

	if err := store.AssignTxHash(context.Background(), record.ID, "first-hash"); err != nil {
		t.Fatalf("assign tx hash: %v", err)
	}
	err := store.AssignTxHash(context.Background(), record.ID, "second-hash")
	if !errors.Is(err, storage.ErrAlreadyIssued) {
		t.Fatalf("reassign error = %v, want %v", err, storage.ErrAlreadyIssued)
	}

	records, err := store.ListRecords(context.Background())
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if records[0].TxHash != "first-hash" {
		t.Fatalf("tx_hash = %q, want %q (never overwritten)", records[0].TxHash, "first-hash")
	}
}

func TestAssignTxHashMissingRecord(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	err := store.AssignTxHash(context.Background(), 9999, "hash")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("assign error = %v, want %v", err, storage.ErrNotFound)
	}
}
