// Package dataset loads the historical detector table into an immutable
// in-memory Dataset. Loading happens once at startup; everything downstream
// shares the records read-only.
package dataset

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"traffic-analytics-api/analytics"
	"traffic-analytics-api/models"
)

// Well-known column names of the source table.
const (
	colDetector = "detid"
	colCity     = "city"
	colDay      = "day"
	colInterval = "interval"
	colFlow     = "flow"
	colOcc      = "occ"
	colError    = "error"
	colSpeed    = "speed"
)

// dayFormats are tried in order when parsing the day column.
var dayFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// Options control loading. The zero value is not usable; use DefaultOptions.
type Options struct {
	// NullThreshold drops a column when its fraction of missing cells
	// reaches this value.
	NullThreshold float64
	// Delimiter separates fields in the source file.
	Delimiter rune
}

func DefaultOptions() Options {
	return Options{NullThreshold: 0.95, Delimiter: ','}
}

// Dataset is the immutable in-memory table plus its schema descriptor.
type Dataset struct {
	Records []models.Record
	Schema  models.Schema
}

// Load reads the delimited file at path into a Dataset. Malformed numeric or
// date cells become missing values on otherwise-kept rows; only structural
// problems (unreadable file, no rows) are errors.
func Load(path string, opts Options) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(opts.Delimiter),
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			colInterval: series.Float,
			colFlow:     series.Float,
			colOcc:      series.Float,
			colError:    series.Float,
			colSpeed:    series.Float,
		}),
	)
	if df.Error() != nil {
		return nil, fmt.Errorf("parse dataset: %w", df.Error())
	}
	if df.Nrow() == 0 {
		return nil, fmt.Errorf("dataset %s has no rows", path)
	}

	df, dropped := sanitizeColumns(df, opts.NullThreshold)
	schema := buildSchema(df, dropped)

	records := make([]models.Record, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		r := models.Record{}
		if schema.HasDetector {
			r.DetectorID = stringAt(df, colDetector, i)
		}
		if schema.HasCity {
			r.City = stringAt(df, colCity, i)
		}
		if hasColumn(df, colDay) {
			r.Day = parseDay(stringAt(df, colDay, i))
		}
		r.IntervalSec = floatAt(df, colInterval, i)
		r.Flow = floatAt(df, colFlow, i)
		r.Occupancy = floatAt(df, colOcc, i)
		if schema.HasError {
			r.ErrorRate = floatAt(df, colError, i)
		}
		if schema.HasSpeed {
			r.SpeedKMH = floatAt(df, colSpeed, i)
		}

		r.Hour = analytics.HourBucket(r.IntervalSec)
		r.DayType = analytics.DayType(r.Day)
		records = append(records, r)
	}

	return &Dataset{Records: records, Schema: schema}, nil
}

// sanitizeColumns drops columns whose missing-cell ratio reaches threshold.
// Purely structural: rows are never dropped here.
func sanitizeColumns(df dataframe.DataFrame, threshold float64) (dataframe.DataFrame, []string) {
	if threshold <= 0 || threshold > 1 {
		return df, nil
	}
	var dropped []string
	for _, name := range df.Names() {
		col := df.Col(name)
		missing := 0
		for i := 0; i < col.Len(); i++ {
			elem := col.Elem(i)
			if elem.IsNA() || strings.TrimSpace(elem.String()) == "" {
				missing++
			}
		}
		if col.Len() > 0 && float64(missing)/float64(col.Len()) >= threshold {
			dropped = append(dropped, name)
		}
	}
	// Keep at least one column so the frame stays well-formed.
	if len(dropped) > 0 && len(dropped) < len(df.Names()) {
		df = df.Drop(dropped)
	}
	return df, dropped
}

func buildSchema(df dataframe.DataFrame, dropped []string) models.Schema {
	return models.Schema{
		Columns:     df.Names(),
		Dropped:     dropped,
		HasDetector: hasColumn(df, colDetector),
		HasCity:     hasColumn(df, colCity),
		HasError:    hasColumn(df, colError),
		HasSpeed:    hasColumn(df, colSpeed),
	}
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func stringAt(df dataframe.DataFrame, name string, i int) string {
	if !hasColumn(df, name) {
		return ""
	}
	elem := df.Col(name).Elem(i)
	if elem.IsNA() {
		return ""
	}
	return strings.TrimSpace(elem.String())
}

func floatAt(df dataframe.DataFrame, name string, i int) *float64 {
	if !hasColumn(df, name) {
		return nil
	}
	elem := df.Col(name).Elem(i)
	if elem.IsNA() {
		return nil
	}
	v := elem.Float()
	if v != v { // NaN from a failed numeric coercion
		return nil
	}
	return &v
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dayFormats {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
