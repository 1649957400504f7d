// Package sqlite provides a SQLite-backed registry storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidemark/bluecarbon/internal/platform/storage/sqlitemigrate"
	"github.com/tidemark/bluecarbon/internal/services/registry/storage"
	"github.com/tidemark/bluecarbon/internal/services/registry/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists registry records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toText(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func fromText(value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created_at %q: %w", value, err)
	}
	return parsed.UTC(), nil
}

// Open opens a SQLite registry store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveRecord inserts one registry record and returns it with its row id set.
func (s *Store) SaveRecord(ctx context.Context, record storage.Record) (storage.Record, error) {
	if err := ctx.Err(); err != nil {
		return storage.Record{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Record{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.RecordUUID) == "" {
		return storage.Record{}, fmt.Errorf("record uuid is required")
	}
	if strings.TrimSpace(record.MRVStatus) == "" {
		return storage.Record{}, fmt.Errorf("mrv status is required")
	}
	if record.Credits < 0 {
		return storage.Record{}, fmt.Errorf("credits must be non-negative")
	}
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	record.CreatedAt = createdAt.UTC()

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO registry (
		   record_uuid,
		   created_at,
		   project_name,
		   data_type,
		   credits,
		   mrv_status,
		   mrv_msg,
		   tx_hash
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.RecordUUID,
		toText(record.CreatedAt),
		record.ProjectName,
		record.DataType,
		record.Credits,
		record.MRVStatus,
		record.MRVMsg,
		nullableText(record.TxHash),
	)
	if err != nil {
		return storage.Record{}, fmt.Errorf("insert registry record: %w", err)
	}
	record.ID, err = result.LastInsertId()
	if err != nil {
		return storage.Record{}, fmt.Errorf("read inserted record id: %w", err)
	}
	return record, nil
}

// ListRecords returns every registry record, newest first.
func (s *Store) ListRecords(ctx context.Context) ([]storage.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx, selectRecordSQL+" ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("query registry records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []storage.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registry records: %w", err)
	}
	return records, nil
}

// LatestIssuable returns the newest verified record whose tx hash is unset.
func (s *Store) LatestIssuable(ctx context.Context) (storage.Record, error) {
	if err := ctx.Err(); err != nil {
		return storage.Record{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Record{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		selectRecordSQL+` WHERE mrv_status = 'verified' AND (tx_hash IS NULL OR tx_hash = '') ORDER BY id DESC LIMIT 1`,
	)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Record{}, storage.ErrNotFound
		}
		return storage.Record{}, err
	}
	return record, nil
}

// AssignTxHash sets a record's tx hash if and only if it is still empty.
func (s *Store) AssignTxHash(ctx context.Context, recordID int64, txHash string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(txHash) == "" {
		return fmt.Errorf("tx hash is required")
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE registry SET tx_hash = ? WHERE id = ? AND (tx_hash IS NULL OR tx_hash = '')`,
		txHash,
		recordID,
	)
	if err != nil {
		return fmt.Errorf("assign tx hash: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 1 {
		return nil
	}

	var exists int
	row := s.sqlDB.QueryRowContext(ctx, `SELECT 1 FROM registry WHERE id = ?`, recordID)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("check record existence: %w", err)
	}
	return storage.ErrAlreadyIssued
}

const selectRecordSQL = `SELECT id, record_uuid, created_at, project_name, data_type, credits, mrv_status, mrv_msg, tx_hash FROM registry`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (storage.Record, error) {
	var record storage.Record
	var createdAt string
	var txHash sql.NullString
	if err := row.Scan(
		&record.ID,
		&record.RecordUUID,
		&createdAt,
		&record.ProjectName,
		&record.DataType,
		&record.Credits,
		&record.MRVStatus,
		&record.MRVMsg,
		&txHash,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Record{}, err
		}
		return storage.Record{}, fmt.Errorf("scan registry record: %w", err)
	}
	parsed, err := fromText(createdAt)
	if err != nil {
		return storage.Record{}, err
	}
	record.CreatedAt = parsed
	record.TxHash = txHash.String
	return record, nil
}

func nullableText(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

var _ storage.RecordStore = (*Store)(nil)
