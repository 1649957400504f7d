// Package mrv implements the measurement/reporting/verification checks and
// credit estimators applied to uploaded proof artifacts.
//
// Every function here is a pure function of the decoded artifact: identical
// input pixels or readings always produce identical verdicts and credit
// values. Failure verdicts are normal outcomes, not errors; errors are
// reserved for artifacts that cannot be decoded at all.
package mrv

// Status is the MRV outcome recorded on a credit row.
type Status string

const (
	StatusVerified Status = "verified"
	StatusRejected Status = "rejected"
)

// DataType identifies the kind of proof artifact behind a record.
type DataType string

const (
	DataTypeImage  DataType = "image"
	DataTypeIoTCSV DataType = "iot_csv"
)

// Verdict is the result of a plausibility check on a decoded artifact.
type Verdict struct {
	// Passed reports whether the artifact cleared every check.
	Passed bool
	// Reason is a human-readable explanation, stored as the record note.
	Reason string
}

// Status maps a verdict to the MRV status persisted with the record.
func (v Verdict) Status() Status {
	if v.Passed {
		return StatusVerified
	}
	return StatusRejected
}
