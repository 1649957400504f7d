// Package storage defines persistence contracts for registry records.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested registry record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyIssued indicates a record whose audit tag is already set.
	// Tags are assigned at most once and never overwritten.
	ErrAlreadyIssued = errors.New("record already has a tx hash")
)

// Record stores one upload-and-verify outcome in the flat registry table.
type Record struct {
	ID          int64
	RecordUUID  string
	CreatedAt   time.Time
	ProjectName string
	DataType    string
	Credits     int64
	MRVStatus   string
	MRVMsg      string
	TxHash      string
}

// RecordStore persists registry records.
type RecordStore interface {
	// SaveRecord inserts one record and returns it with its row id set.
	SaveRecord(ctx context.Context, record Record) (Record, error)
	// ListRecords returns every record, newest first.
	ListRecords(ctx context.Context) ([]Record, error)
	// LatestIssuable returns the newest verified record without a tx hash.
	LatestIssuable(ctx context.Context) (Record, error)
	// AssignTxHash sets a record's tx hash if and only if it is still empty.
	AssignTxHash(ctx context.Context, recordID int64, txHash string) error
}
