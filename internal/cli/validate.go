package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/bikeshare/pkg/dataset"
	"github.com/aretw0/bikeshare/pkg/domain"
)

// ErrInvalidDatasets is returned by Validate when at least one city fails its check.
var ErrInvalidDatasets = errors.New("invalid datasets")

// Validate resolves the city table and checks the header of every city's file.
// Each city gets one report line; all cities are checked even after a failure.
func Validate(opts RunOptions) error {
	logger := createLogger(opts.Debug)
	out := opts.stdout()

	table, err := dataset.LoadTable(opts.ConfigPath, opts.DataDir)
	if err != nil {
		return fmt.Errorf("error loading city table: %w", err)
	}
	logger.Debug("city table", "table", table.String())

	failed := 0
	for _, city := range domain.Cities {
		path, err := table.Path(city)
		if err == nil {
			err = checkHeader(city, path)
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "%-14s FAIL %v\n", city, err)
			continue
		}
		fmt.Fprintf(out, "%-14s ok   %s\n", city, path)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidDatasets, failed, len(domain.Cities))
	}
	return nil
}

func checkHeader(city domain.City, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &domain.DataSourceError{City: city, Path: path, Reason: "cannot open dataset", Err: err}
	}
	defer f.Close()

	columns, err := dataset.ReadHeader(f)
	if err != nil {
		return &domain.DataSourceError{City: city, Path: path, Line: 1, Reason: "unreadable header", Err: err}
	}
	if missing := dataset.CheckColumns(columns); len(missing) > 0 {
		return &domain.DataSourceError{City: city, Path: path, Line: 1, Reason: "missing required columns " + strings.Join(missing, ", ")}
	}
	return nil
}
