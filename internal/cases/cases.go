package cases

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Case is one FORMAT/STRING pair to probe.
type Case struct {
	// Name labels the case in batch output. Defaults to "case-N".
	Name string `yaml:"name"`

	Format string `yaml:"format"`
	Input  string `yaml:"input"`

	// Expect, if set, is the report line the probe must print.
	Expect string `yaml:"expect,omitempty"`
}

// File is the top-level layout of a case file.
type File struct {
	Cases []Case `yaml:"cases"`
}

// Default returns the starter cases written by `tmprobe-batch -init`.
// Expectations are left empty because the weekday and day-of-year
// computation differs between C libraries.
func Default() *File {
	return &File{
		Cases: []Case{
			{Name: "date only", Format: "%Y-%m-%d", Input: "2024-03-15"},
			{Name: "clock only", Format: "%H:%M:%S", Input: "12:34:56"},
			{Name: "prefix", Format: "%Y", Input: "2024-extra"},
			{Name: "literal mismatch", Format: "T%H", Input: "12"},
			{Name: "weekday name", Format: "%a %d %b %Y", Input: "Sun 17 Mar 2024"},
			{Name: "day of year", Format: "%Y %j", Input: "2024 077"},
		},
	}
}

// Normalize names unnamed cases and checks that every case has a format.
func (f *File) Normalize() error {
	if f.Cases == nil {
		f.Cases = []Case{}
	}
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = "case-" + strconv.Itoa(i+1)
		}
		if c.Format == "" {
			return fmt.Errorf("case %q: format is empty", c.Name)
		}
	}
	return nil
}

// Load reads and normalizes a YAML case file.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("case file path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := f.Normalize(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Save writes f to path through a temp file in the same directory and a
// rename, leaving the result with 0600 permissions.
func Save(path string, f *File) error {
	if path == "" {
		return errors.New("case file path is empty")
	}
	if f == nil {
		return errors.New("case file is nil")
	}
	if err := f.Normalize(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmprobe-cases-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
