// Package app orchestrates registry operations: verifying uploaded proof
// artifacts, issuing simulated ledger tags, and exporting the registry.
package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tidemark/bluecarbon/internal/ledger"
	"github.com/tidemark/bluecarbon/internal/mrv"
	"github.com/tidemark/bluecarbon/internal/platform/id"
	"github.com/tidemark/bluecarbon/internal/services/registry/storage"
)

var (
	// ErrNoIssuableRecord indicates no verified record is waiting for a tag.
	// This is an informational outcome, not a failure: nothing changes.
	ErrNoIssuableRecord = errors.New("no verified unissued record found")
	// ErrUnsupportedUpload indicates a file extension outside the accepted
	// artifact kinds.
	ErrUnsupportedUpload = errors.New("unsupported upload type")
)

// Service coordinates artifact verification and registry persistence.
type Service struct {
	store  storage.RecordStore
	clock  func() time.Time
	tracer trace.Tracer
}

// New creates a registry service backed by the given store.
func New(store storage.RecordStore) *Service {
	return &Service{
		store:  store,
		clock:  time.Now,
		tracer: otel.Tracer("bluecarbon/registry"),
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// UploadOutcome reports the verification result of one upload.
type UploadOutcome struct {
	Record  storage.Record
	Verdict mrv.Verdict
}

// VerifyUpload decodes the uploaded artifact, runs the plausibility check,
// estimates credits on a pass, and persists the outcome. Rejected artifacts
// are persisted with zero credits and the failure reason as the note; decode
// failures persist nothing.
func (s *Service) VerifyUpload(ctx context.Context, projectName, filename string, upload io.Reader) (UploadOutcome, error) {
	if s == nil || s.store == nil {
		return UploadOutcome{}, fmt.Errorf("service is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "registry.verify_upload")
	defer span.End()

	projectName = strings.TrimSpace(projectName)

	var (
		dataType mrv.DataType
		verdict  mrv.Verdict
		credits  int64
	)
	switch strings.ToLower(filepath.Ext(strings.TrimSpace(filename))) {
	case ".csv":
		series, err := mrv.ParseSeries(upload)
		if err != nil {
			return UploadOutcome{}, err
		}
		dataType = mrv.DataTypeIoTCSV
		verdict = mrv.CheckSeries(series)
		if verdict.Passed {
			credits = mrv.SeriesCredits(series)
		}
	case ".png", ".jpg", ".jpeg":
		img, err := mrv.DecodeImage(upload)
		if err != nil {
			return UploadOutcome{}, err
		}
		dataType = mrv.DataTypeImage
		verdict = mrv.CheckImage(img)
		if verdict.Passed {
			credits = mrv.AreaCredits(img)
		}
	default:
		return UploadOutcome{}, fmt.Errorf("%w: %q", ErrUnsupportedUpload, filename)
	}

	recordUUID, err := id.NewUUID()
	if err != nil {
		return UploadOutcome{}, err
	}
	record, err := s.store.SaveRecord(ctx, storage.Record{
		RecordUUID:  recordUUID,
		CreatedAt:   s.clock().UTC(),
		ProjectName: projectName,
		DataType:    string(dataType),
		Credits:     credits,
		MRVStatus:   string(verdict.Status()),
		MRVMsg:      verdict.Reason,
	})
	if err != nil {
		return UploadOutcome{}, fmt.Errorf("persist verification outcome: %w", err)
	}
	return UploadOutcome{Record: record, Verdict: verdict}, nil
}

// IssueLatest assigns a simulated ledger tag to the newest verified record
// without one. The seed mixes the record uuid with the issue time so repeated
// issues over different records never collide.
func (s *Service) IssueLatest(ctx context.Context) (storage.Record, error) {
	if s == nil || s.store == nil {
		return storage.Record{}, fmt.Errorf("service is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "registry.issue_latest")
	defer span.End()

	record, err := s.store.LatestIssuable(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Record{}, ErrNoIssuableRecord
		}
		return storage.Record{}, fmt.Errorf("find issuable record: %w", err)
	}

	seed := record.RecordUUID + "|" + strconv.FormatInt(s.clock().UnixNano(), 10)
	txHash := ledger.AuditTag(seed)
	if err := s.store.AssignTxHash(ctx, record.ID, txHash); err != nil {
		return storage.Record{}, fmt.Errorf("assign tx hash: %w", err)
	}
	record.TxHash = txHash
	return record, nil
}

// Records returns every registry record, newest first.
func (s *Service) Records(ctx context.Context) ([]storage.Record, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service is not configured")
	}
	return s.store.ListRecords(ctx)
}

// ExportCSV writes the full registry as CSV, newest first, with a header row.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	if s == nil || s.store == nil {
		return fmt.Errorf("service is not configured")
	}
	ctx, span := s.tracer.Start(ctx, "registry.export_csv")
	defer span.End()

	records, err := s.Records(ctx)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	header := []string{"id", "record_uuid", "created_at", "project_name", "data_type", "credits", "mrv_status", "mrv_msg", "tx_hash"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, record := range records {
		row := []string{
			strconv.FormatInt(record.ID, 10),
			record.RecordUUID,
			record.CreatedAt.UTC().Format(time.RFC3339Nano),
			record.ProjectName,
			record.DataType,
			strconv.FormatInt(record.Credits, 10),
			record.MRVStatus,
			record.MRVMsg,
			record.TxHash,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
