package mrv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrBadSeries indicates a CSV upload that could not be parsed into readings.
var ErrBadSeries = errors.New("sensor csv could not be parsed")

const (
	valueColumn     = "value"
	timestampColumn = "timestamp"

	// minReadings is the smallest reading count the checks accept.
	minReadings = 3
	// zScoreLimit marks a reading as a statistical anomaly.
	zScoreLimit = 3.0
	// minUniqueValues is the flatline threshold: at or below this many
	// distinct values the series is rejected.
	minUniqueValues = 2
)

// Series holds the decoded readings from an IoT sensor CSV.
type Series struct {
	hasValueColumn bool
	values         []float64
	timestamps     []string
}

// Values returns the non-missing readings in file order.
func (s Series) Values() []float64 { return s.values }

// ParseSeries decodes a sensor CSV. The first row is the header; a column
// named "value" holds numeric readings and an optional "timestamp" column
// holds the reading times. Empty cells are dropped rather than treated as
// zero; non-numeric value cells and files with no rows at all are format
// errors that abort the upload.
func ParseSeries(r io.Reader) (Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return Series{}, fmt.Errorf("%w: %v", ErrBadSeries, err)
	}
	if len(rows) == 0 {
		return Series{}, fmt.Errorf("%w: file contains no rows", ErrBadSeries)
	}

	valueIdx, timestampIdx := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case valueColumn:
			valueIdx = i
		case timestampColumn:
			timestampIdx = i
		}
	}
	if valueIdx == -1 {
		return Series{}, nil
	}

	series := Series{hasValueColumn: true}
	for rowNum, row := range rows[1:] {
		if valueIdx < len(row) {
			cell := strings.TrimSpace(row[valueIdx])
			if cell != "" {
				value, err := strconv.ParseFloat(cell, 64)
				if err != nil {
					return Series{}, fmt.Errorf("%w: row %d: value %q is not numeric", ErrBadSeries, rowNum+2, cell)
				}
				series.values = append(series.values, value)
			}
		}
		if timestampIdx >= 0 && timestampIdx < len(row) {
			if cell := strings.TrimSpace(row[timestampIdx]); cell != "" {
				series.timestamps = append(series.timestamps, cell)
			}
		}
	}
	return series, nil
}

// CheckSeries runs the sensor-reading plausibility heuristics: a required
// value column, at least minReadings readings, an anomaly budget of
// max(1, n/10) readings with |z| > zScoreLimit, and a flatline check on the
// distinct value count.
func CheckSeries(s Series) Verdict {
	if !s.hasValueColumn {
		return Verdict{Reason: `missing required column "value"`}
	}
	n := len(s.values)
	if n < minReadings {
		return Verdict{Reason: fmt.Sprintf("not enough readings (%d, need at least %d)", n, minReadings)}
	}

	mean, std := meanStd(s.values)
	denominator := std
	if denominator == 0 {
		denominator = 1
	}
	anomalies := 0
	for _, value := range s.values {
		if math.Abs((value-mean)/denominator) > zScoreLimit {
			anomalies++
		}
	}
	budget := n / 10
	if budget < 1 {
		budget = 1
	}
	if anomalies > budget {
		return Verdict{Reason: fmt.Sprintf("%d statistical anomalies detected in sensor readings", anomalies)}
	}

	unique := make(map[float64]bool, n)
	for _, value := range s.values {
		unique[value] = true
	}
	if len(unique) <= minUniqueValues {
		return Verdict{Reason: fmt.Sprintf("flatline: only %d unique values in sensor readings", len(unique))}
	}

	return Verdict{Passed: true, Reason: fmt.Sprintf("readings look ok (mean=%.2f, std=%.2f, anomalies=%d)", mean, std, anomalies)}
}

// meanStd returns the mean and population standard deviation of values.
func meanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, value := range values {
		sum += value
	}
	mean = sum / float64(len(values))

	var sumSquares float64
	for _, value := range values {
		diff := value - mean
		sumSquares += diff * diff
	}
	return mean, math.Sqrt(sumSquares / float64(len(values)))
}
