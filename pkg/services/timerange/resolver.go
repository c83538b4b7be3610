package timerange

import (
	"errors"
	"fmt"
	"time"

	"github.com/ad-tools/revenue-console/pkg/models/domain"
)

const (
	PresetWeek    = "7d"
	PresetMonth30 = "30d"
	PresetQuarter = "90d"
	PresetYTD     = "ytd"
	PresetMonth   = "month"

	DefaultPreset = PresetMonth30

	dateLayout = "2006-01-02"
)

// ErrInvertedRange rejects explicit ranges with startDate after endDate.
// The console UI never produces these; a hand-crafted request gets a 400.
var ErrInvertedRange = errors.New("startDate must not be after endDate")

// Query carries the raw range parameters of a report request.
type Query struct {
	Preset    string
	StartDate string
	EndDate   string
}

// Resolve turns a preset tag or an explicit date pair into a concrete
// interval. Explicit dates, when both are present, take precedence over the
// preset: start is the start of StartDate and end the last second of
// EndDate. Presets resolve relative to now.
func Resolve(q Query, now time.Time) (domain.TimeRange, error) {
	if q.StartDate != "" && q.EndDate != "" {
		return resolveExplicit(q.StartDate, q.EndDate)
	}

	preset := q.Preset
	if preset == "" {
		preset = DefaultPreset
	}

	switch preset {
	case PresetWeek:
		return domain.TimeRange{Start: now.AddDate(0, 0, -7), End: now}, nil
	case PresetMonth30:
		return domain.TimeRange{Start: now.AddDate(0, 0, -30), End: now}, nil
	case PresetQuarter:
		return domain.TimeRange{Start: now.AddDate(0, 0, -90), End: now}, nil
	case PresetYTD:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return domain.TimeRange{Start: start, End: now}, nil
	case PresetMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0).Add(-time.Second)
		return domain.TimeRange{Start: start, End: end}, nil
	default:
		return domain.TimeRange{}, fmt.Errorf("unknown range preset %q", preset)
	}
}

func resolveExplicit(startDate, endDate string) (domain.TimeRange, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("invalid startDate %q: expected format YYYY-MM-DD", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("invalid endDate %q: expected format YYYY-MM-DD", endDate)
	}
	if start.After(end) {
		return domain.TimeRange{}, ErrInvertedRange
	}

	// End is inclusive of the whole end date.
	end = end.AddDate(0, 0, 1).Add(-time.Second)
	return domain.TimeRange{Start: start, End: end}, nil
}
