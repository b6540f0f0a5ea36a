package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/bikeshare/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the configuration file looked up when none is given.
const DefaultConfigPath = "bikeshare.yaml"

// DefaultFiles maps each city to its conventional dataset file name.
var DefaultFiles = map[domain.City]string{
	domain.Chicago:     "chicago.csv",
	domain.NewYorkCity: "new_york_city.csv",
	domain.Washington:  "washington.csv",
}

// CityConfig binds a city name to a dataset file.
type CityConfig struct {
	Name string `yaml:"name" json:"name"`
	File string `yaml:"file" json:"file"`
}

// ConfigFile represents the structure of bikeshare.yaml
type ConfigFile struct {
	DataDir string       `yaml:"data_dir" json:"data_dir"`
	Cities  []CityConfig `yaml:"cities" json:"cities"`
}

// Table maps every supported city to exactly one dataset file.
type Table struct {
	DataDir string
	Files   map[domain.City]string
}

// DefaultTable returns the conventional city table rooted at dataDir.
func DefaultTable(dataDir string) Table {
	if dataDir == "" {
		dataDir = "."
	}
	files := make(map[domain.City]string, len(DefaultFiles))
	for city, file := range DefaultFiles {
		files[city] = file
	}
	return Table{DataDir: dataDir, Files: files}
}

// LoadTable reads a configuration file (YAML or JSON) and applies it over the defaults.
// A missing file yields the default table. A non-empty dataDir overrides the file's data_dir.
func LoadTable(path, dataDir string) (Table, error) {
	var cfg ConfigFile

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Table{}, fmt.Errorf("failed to read city config: %w", err)
		}
		if err == nil {
			if strings.ToLower(filepath.Ext(path)) == ".json" {
				if err := json.Unmarshal(data, &cfg); err != nil {
					return Table{}, fmt.Errorf("failed to parse %s: %w", path, err)
				}
			} else {
				if err := yaml.Unmarshal(data, &cfg); err != nil {
					return Table{}, fmt.Errorf("failed to parse %s: %w", path, err)
				}
			}
		}
	}

	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	table := DefaultTable(dataDir)

	for _, entry := range cfg.Cities {
		city, err := domain.ParseCity(entry.Name)
		if err != nil {
			return Table{}, fmt.Errorf("city config %s: %w", path, err)
		}
		if strings.TrimSpace(entry.File) == "" {
			return Table{}, fmt.Errorf("city config %s: no file for %q", path, city)
		}
		table.Files[city] = entry.File
	}

	return table, nil
}

// Path returns the dataset path of a city, joined onto the data directory when relative.
func (t Table) Path(city domain.City) (string, error) {
	file, ok := t.Files[city]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCity, city)
	}
	if filepath.IsAbs(file) {
		return file, nil
	}
	return filepath.Join(t.DataDir, file), nil
}

// Resolve checks that every city's dataset file exists.
// It returns a *domain.DataSourceError for the first missing file, in prompt order.
func (t Table) Resolve() error {
	for _, city := range domain.Cities {
		path, err := t.Path(city)
		if err != nil {
			return err
		}
		info, err := os.Stat(path)
		if err != nil {
			return &domain.DataSourceError{City: city, Path: path, Reason: "dataset file not found", Err: err}
		}
		if info.IsDir() {
			return &domain.DataSourceError{City: city, Path: path, Reason: "dataset path is a directory"}
		}
	}
	return nil
}
