package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aretw0/bikeshare/pkg/domain"
)

// cancelCheckInterval is the number of rows read between context checks.
const cancelCheckInterval = 4096

// Loader reads city datasets described by a Table.
type Loader struct {
	table  Table
	logger *slog.Logger
}

// LoaderOption defines a functional option for configuring the Loader.
type LoaderOption func(*Loader)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader over the given city table.
func NewLoader(table Table, opts ...LoaderOption) *Loader {
	l := &Loader{
		table:  table,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Table returns the city table the loader reads from.
func (l *Loader) Table() Table {
	return l.table
}

// Load reads the full record set of a city.
// Missing or malformed files are reported as *domain.DataSourceError.
func (l *Loader) Load(ctx context.Context, city domain.City) (*domain.RecordSet, error) {
	path, err := l.table.Path(city)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DataSourceError{City: city, Path: path, Reason: "cannot open dataset", Err: err}
	}
	defer f.Close()

	rs, err := Read(ctx, f, city, path)
	if err != nil {
		return nil, err
	}

	l.logger.Debug("dataset loaded", "city", city, "path", path, "trips", rs.Len(), "elapsed", time.Since(start))
	return rs, nil
}

// Read parses a CSV stream into a record set. path is only used in error messages.
func Read(ctx context.Context, r io.Reader, city domain.City, path string) (*domain.RecordSet, error) {
	fail := func(line int, reason string, err error) error {
		return &domain.DataSourceError{City: city, Path: path, Line: line, Reason: reason, Err: err}
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fail(1, "empty dataset", nil)
		}
		return nil, fail(1, "unreadable header", err)
	}

	keys, columns := normalizeHeader(header)
	if missing := missingColumns(columns); len(missing) > 0 {
		return nil, fail(1, "missing required columns "+strings.Join(missing, ", "), nil)
	}

	var trips []domain.Trip
	for line := 2; ; line++ {
		if line%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fail(line, "malformed row", err)
		}

		fields := make(map[string]any, len(keys))
		for i, val := range record {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			val = strings.TrimSpace(val)
			if val == "" {
				continue
			}
			fields[keys[i]] = val
		}

		trip, err := decodeTrip(fields)
		if err != nil {
			return nil, fail(line, "malformed row", err)
		}
		trips = append(trips, trip)
	}

	return domain.NewRecordSet(city, columns, trips), nil
}

// ReadHeader returns the normalized column identifiers of a CSV stream.
func ReadHeader(r io.Reader) ([]string, error) {
	header, err := csv.NewReader(r).Read()
	if err != nil {
		return nil, err
	}
	_, columns := normalizeHeader(header)
	return columns, nil
}

// CheckColumns returns the required columns missing from columns.
func CheckColumns(columns []string) []string {
	return missingColumns(columns)
}

// NormalizeColumn lowercases a column name and strips its spaces ("Start Time" -> "starttime").
func NormalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
}

// normalizeHeader returns the per-position keys and the list of named columns.
// Unnamed columns (a leading row index) get an empty key and are skipped.
func normalizeHeader(header []string) ([]string, []string) {
	keys := make([]string, len(header))
	columns := make([]string, 0, len(header))
	for i, h := range header {
		key := NormalizeColumn(h)
		if key == "" || strings.HasPrefix(key, "unnamed:") {
			continue
		}
		keys[i] = key
		columns = append(columns, key)
	}
	return keys, columns
}

func missingColumns(columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}
	var missing []string
	for _, req := range domain.RequiredColumns {
		if !present[req] {
			missing = append(missing, req)
		}
	}
	return missing
}

// String implements fmt.Stringer for debug output.
func (t Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "data_dir=%s", t.DataDir)
	for _, city := range domain.Cities {
		fmt.Fprintf(&b, " %s=%s", city, t.Files[city])
	}
	return b.String()
}
