package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// List returns the metadata of every record in the shelf, ordered by
// directory name. Directories without a metadata file are skipped.
// ErrEmpty is returned when the root has no entries at all.
func (s *Store) List() ([]Metadata, error) {
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("reading shelf directory: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrEmpty
	}

	rows := make([]Metadata, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		info, err := os.Stat(filepath.Join(s.root, name))
		if err != nil || !info.IsDir() {
			continue
		}

		m, err := readMetadataFile(s.MetadataPath(name))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Debug("skipping directory without metadata", zap.String("dir", name))
				continue
			}
			return nil, fmt.Errorf("reading metadata for %q: %w", name, err)
		}
		rows = append(rows, *m)
	}

	return rows, nil
}

// WriteCSV writes rows as CSV with a CSVHeader header line.
func WriteCSV(w io.Writer, rows []Metadata) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, m := range rows {
		if err := cw.Write(m.row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
