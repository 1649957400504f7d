package mrv

import (
	"image"
	"math"
	"time"
)

// The two image formulas below are intentionally different: each mirrors the
// surface it serves. The registry service estimates by image area, the portal
// service by luminance variance. Callers pick exactly one.

// AreaCredits estimates credits for an image proportionally to its pixel
// area: max(1, floor(width*height/200000 * 10)).
func AreaCredits(img image.Image) int64 {
	bounds := img.Bounds()
	base := float64(bounds.Dx()*bounds.Dy()) / 200000.0
	credits := int64(base * 10)
	if credits < 1 {
		credits = 1
	}
	return credits
}

// VarianceCredits estimates credits for an image proportionally to its
// luminance variance, rounded to two decimals.
func VarianceCredits(img image.Image) float64 {
	return math.Round(LuminanceVariance(img)) / 100
}

// timestampLayouts are tried in order when parsing the optional timestamp
// column. Any cell that matches none of them invalidates the whole column.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// SeriesCredits estimates credits for a sensor series:
// max(1, floor(mean(value) * durationHours / 10)), where the duration spans
// the timestamp column and is floored at one hour. A missing or unparseable
// timestamp column also yields a one-hour duration.
func SeriesCredits(s Series) int64 {
	if len(s.values) == 0 {
		return 1
	}
	var sum float64
	for _, value := range s.values {
		sum += value
	}
	mean := sum / float64(len(s.values))

	credits := int64(mean * s.durationHours() / 10)
	if credits < 1 {
		credits = 1
	}
	return credits
}

func (s Series) durationHours() float64 {
	duration := 1.0
	if parsed, ok := parseTimestamps(s.timestamps); ok && len(parsed) > 0 {
		earliest, latest := parsed[0], parsed[0]
		for _, value := range parsed[1:] {
			if value.Before(earliest) {
				earliest = value
			}
			if value.After(latest) {
				latest = value
			}
		}
		duration = latest.Sub(earliest).Hours()
	}
	if duration < 1.0 {
		duration = 1.0
	}
	return duration
}

func parseTimestamps(cells []string) ([]time.Time, bool) {
	parsed := make([]time.Time, 0, len(cells))
	for _, cell := range cells {
		value, err := parseTimestamp(cell)
		if err != nil {
			return nil, false
		}
		parsed = append(parsed, value)
	}
	return parsed, true
}

func parseTimestamp(cell string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		value, err := time.Parse(layout, cell)
		if err == nil {
			return value, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
