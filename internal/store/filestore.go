// Package store reads and writes the line-oriented text files brewround
// keeps its data in.
package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileStore is a single text file holding either plain lines or CSV rows.
// A missing file reads as empty.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// ReadLines returns every non-blank line with its line ending removed.
func (s *FileStore) ReadLines() ([]string, error) {
	data, err := s.read()
	if err != nil || data == nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return lines, nil
}

// SaveLines overwrites the file with one line per item.
func (s *FileStore) SaveLines(lines []string) error {
	var buf bytes.Buffer
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return s.write(buf.Bytes())
}

// ReadCSV returns every CSV record. All records must have the same number
// of fields as the first one.
func (s *FileStore) ReadCSV() ([][]string, error) {
	data, err := s.read()
	if err != nil || data == nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return records, nil
}

// SaveCSV overwrites the file with the given records.
func (s *FileStore) SaveCSV(records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.path, err)
	}
	return s.write(buf.Bytes())
}

func (s *FileStore) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}
	return data, nil
}

func (s *FileStore) write(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", s.path, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}
