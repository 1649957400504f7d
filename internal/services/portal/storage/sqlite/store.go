// Package sqlite provides a SQLite-backed portal storage implementation.
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
	"github.com/tidemark/bluecarbon/internal/services/portal/storage"
	"github.com/tidemark/bluecarbon/internal/services/portal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists portal projects, credits, and complaints in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toText(value time.Time) string {
	return value.UTC().Format(time.RFC3339Nano)
}

func fromText(column string, value string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s %q: %w", column, value, err)
	}
	return parsed.UTC(), nil
}

// Open opens a SQLite portal store and applies embedded migrations.
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

func (s *Store) ready() error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// SaveProject inserts a registered project.
func (s *Store) SaveProject(ctx context.Context, project storage.Project) (storage.Project, error) {
	if err := ctx.Err(); err != nil {
		return storage.Project{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Project{}, err
	}
	if strings.TrimSpace(project.UUID) == "" {
		return storage.Project{}, fmt.Errorf("project uuid is required")
	}
	if strings.TrimSpace(project.Name) == "" {
		return storage.Project{}, fmt.Errorf("project name is required")
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO projects (uuid, name, location, description, created_at, tx_hash) VALUES (?, ?, ?, ?, ?, ?)`,
		project.UUID,
		project.Name,
		project.Location,
		project.Description,
		toText(project.CreatedAt),
		nullableText(project.TxHash),
	)
	if err != nil {
		return storage.Project{}, fmt.Errorf("insert project: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return storage.Project{}, fmt.Errorf("read project id: %w", err)
	}
	project.ID = id
	project.CreatedAt = project.CreatedAt.UTC()
	return project, nil
}

const selectProjectSQL = `SELECT id, uuid, name, location, description, created_at, tx_hash FROM projects`

// GetProject fetches one project by row id.
func (s *Store) GetProject(ctx context.Context, id int64) (storage.Project, error) {
	if err := ctx.Err(); err != nil {
		return storage.Project{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Project{}, err
	}
	project, err := scanProject(s.sqlDB.QueryRowContext(ctx, selectProjectSQL+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Project{}, storage.ErrNotFound
		}
		return storage.Project{}, err
	}
	return project, nil
}

// ListProjects returns every project, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]storage.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, selectProjectSQL+` ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var projects []storage.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// SaveCredit inserts a credit verification outcome.
func (s *Store) SaveCredit(ctx context.Context, credit storage.Credit) (storage.Credit, error) {
	if err := ctx.Err(); err != nil {
		return storage.Credit{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Credit{}, err
	}
	if strings.TrimSpace(credit.UUID) == "" {
		return storage.Credit{}, fmt.Errorf("credit uuid is required")
	}
	if credit.Credits < 0 {
		return storage.Credit{}, fmt.Errorf("credits must be non-negative")
	}
	if credit.Timestamp.IsZero() {
		credit.Timestamp = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO credits (uuid, project_id, data_type, credits, status, notes, timestamp, tx_hash) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		credit.UUID,
		nullableID(credit.ProjectID),
		credit.DataType,
		credit.Credits,
		credit.Status,
		credit.Notes,
		toText(credit.Timestamp),
		nullableText(credit.TxHash),
	)
	if err != nil {
		return storage.Credit{}, fmt.Errorf("insert credit: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return storage.Credit{}, fmt.Errorf("read credit id: %w", err)
	}
	credit.ID = id
	credit.Timestamp = credit.Timestamp.UTC()
	return credit, nil
}

// ListCredits returns every credit record, newest first.
func (s *Store) ListCredits(ctx context.Context) ([]storage.Credit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, uuid, project_id, data_type, credits, status, notes, timestamp, tx_hash FROM credits ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query credits: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var credits []storage.Credit
	for rows.Next() {
		var credit storage.Credit
		var projectID sql.NullInt64
		var timestamp string
		var txHash sql.NullString
		if err := rows.Scan(
			&credit.ID,
			&credit.UUID,
			&projectID,
			&credit.DataType,
			&credit.Credits,
			&credit.Status,
			&credit.Notes,
			&timestamp,
			&txHash,
		); err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		parsed, err := fromText("timestamp", timestamp)
		if err != nil {
			return nil, err
		}
		credit.ProjectID = projectID.Int64
		credit.Timestamp = parsed
		credit.TxHash = txHash.String
		credits = append(credits, credit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credits: %w", err)
	}
	return credits, nil
}

// SaveComplaint inserts a filed complaint.
func (s *Store) SaveComplaint(ctx context.Context, complaint storage.Complaint) (storage.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return storage.Complaint{}, err
	}
	if err := s.ready(); err != nil {
		return storage.Complaint{}, err
	}
	if strings.TrimSpace(complaint.UUID) == "" {
		return storage.Complaint{}, fmt.Errorf("complaint uuid is required")
	}
	if strings.TrimSpace(complaint.Complaint) == "" {
		return storage.Complaint{}, fmt.Errorf("complaint body is required")
	}
	if complaint.CreatedAt.IsZero() {
		complaint.CreatedAt = time.Now().UTC()
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO complaints (uuid, project_id, complaint, status, created_at, tx_hash) VALUES (?, ?, ?, ?, ?, ?)`,
		complaint.UUID,
		nullableID(complaint.ProjectID),
		complaint.Complaint,
		complaint.Status,
		toText(complaint.CreatedAt),
		nullableText(complaint.TxHash),
	)
	if err != nil {
		return storage.Complaint{}, fmt.Errorf("insert complaint: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return storage.Complaint{}, fmt.Errorf("read complaint id: %w", err)
	}
	complaint.ID = id
	complaint.CreatedAt = complaint.CreatedAt.UTC()
	return complaint, nil
}

// ListComplaints returns every complaint, newest first.
func (s *Store) ListComplaints(ctx context.Context) ([]storage.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT id, uuid, project_id, complaint, status, created_at, tx_hash FROM complaints ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query complaints: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var complaints []storage.Complaint
	for rows.Next() {
		var complaint storage.Complaint
		var projectID sql.NullInt64
		var createdAt string
		var txHash sql.NullString
		if err := rows.Scan(
			&complaint.ID,
			&complaint.UUID,
			&projectID,
			&complaint.Complaint,
			&complaint.Status,
			&createdAt,
			&txHash,
		); err != nil {
			return nil, fmt.Errorf("scan complaint: %w", err)
		}
		parsed, err := fromText("created_at", createdAt)
		if err != nil {
			return nil, err
		}
		complaint.ProjectID = projectID.Int64
		complaint.CreatedAt = parsed
		complaint.TxHash = txHash.String
		complaints = append(complaints, complaint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate complaints: %w", err)
	}
	return complaints, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (storage.Project, error) {
	var project storage.Project
	var createdAt string
	var txHash sql.NullString
	if err := row.Scan(
		&project.ID,
		&project.UUID,
		&project.Name,
		&project.Location,
		&project.Description,
		&createdAt,
		&txHash,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Project{}, err
		}
		return storage.Project{}, fmt.Errorf("scan project: %w", err)
	}
	parsed, err := fromText("created_at", createdAt)
	if err != nil {
		return storage.Project{}, err
	}
	project.CreatedAt = parsed
	project.TxHash = txHash.String
	return project, nil
}

func nullableText(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func nullableID(value int64) any {
	if value <= 0 {
		return nil
	}
	return value
}

var _ storage.Store = (*Store)(nil)
