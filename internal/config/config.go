package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// DefaultPath is read when no -config flag is given.
const DefaultPath = "retrieve-seq.json"

// Config holds the optional settings read from the JSON config file.
// Command line flags take precedence over it.
type Config struct {
	LogLevel  string `json:"log_level"`
	LogFile   string `json:"log_file"`
	OutputDir string `json:"output_dir"`
}

// LoadConfig loads a JSON config from the given path. If path is empty, looks for ./retrieve-seq.json.
// A missing file is not an error and yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
