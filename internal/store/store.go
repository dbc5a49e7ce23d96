// Package store manages the on-disk shelf: one directory per record holding
// a copy of the source document, its extracted text, and JSON metadata.
//
//	{root}/{id}/{original-filename}
//	{root}/{id}/{id}.txt
//	{root}/{id}/{id}.json
//
// There is no index. Every operation reads the filesystem directly, and no
// operation is atomic.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bookshelf-cli/shelf/internal/extract"
	"go.uber.org/zap"
)

// TextExtractor converts a source document into plain text.
// ok is false when no text could be produced.
type TextExtractor interface {
	Extract(path string) (text string, ok bool, err error)
}

// Store is a directory-backed record store.
type Store struct {
	root      string
	logger    *zap.Logger
	extractor TextExtractor
	now       func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger for store diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithExtractor replaces the default text extractor.
func WithExtractor(e TextExtractor) Option {
	return func(s *Store) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a Store rooted at root. The directory is created on first use.
func New(root string, opts ...Option) *Store {
	s := &Store{
		root:   root,
		logger: zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		s.extractor = extract.New(s.logger)
	}
	return s
}

// Root returns the store root directory.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the record directory for id.
func (s *Store) Dir(id string) string {
	return filepath.Join(s.root, id)
}

// TextPath returns the path of the extracted text file for id.
func (s *Store) TextPath(id string) string {
	return filepath.Join(s.root, id, id+".txt")
}

// MetadataPath returns the path of the metadata file for id.
func (s *Store) MetadataPath(id string) string {
	return filepath.Join(s.root, id, id+".json")
}

// EnsureRoot creates the root directory if it does not exist.
func (s *Store) EnsureRoot() error {
	if _, err := os.Stat(s.root); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking shelf directory: %w", err)
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return fmt.Errorf("creating shelf directory: %w", err)
	}
	s.logger.Info("created shelf directory", zap.String("path", s.root))
	return nil
}

// ValidateID rejects ids that cannot be used as a single directory name.
func ValidateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || filepath.Base(id) != id {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Create adds a record for the document at sourcePath.
//
// The source is copied into the record directory, its text is extracted
// from the original path, and metadata is written last. A failed extraction
// does not fail the record; the text file is simply absent. Nothing is
// rolled back if a later step fails.
func (s *Store) Create(sourcePath, id, title, memo string) (*Metadata, error) {
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	info, err := os.Stat(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return nil, fmt.Errorf("checking source file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("source %s is a directory", sourcePath)
	}

	dir := s.Dir(id)
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("%w: id %q is already in use", ErrExists, id)
	}
	if err := os.Mkdir(dir, 0755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: id %q is already in use", ErrExists, id)
		}
		return nil, fmt.Errorf("creating record directory: %w", err)
	}

	if err := copyFile(sourcePath, filepath.Join(dir, filepath.Base(sourcePath))); err != nil {
		return nil, fmt.Errorf("copying source file: %w", err)
	}

	text, ok, err := s.extractor.Extract(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}
	if ok && text != "" {
		if err := os.WriteFile(s.TextPath(id), []byte(text), 0644); err != nil {
			return nil, fmt.Errorf("writing text file: %w", err)
		}
	} else {
		s.logger.Debug("no text extracted", zap.String("id", id), zap.String("source", sourcePath))
	}

	now := FormatTime(s.now())
	m := &Metadata{
		ID:        id,
		Title:     title,
		Memo:      memo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := writeMetadataFile(s.MetadataPath(id), m); err != nil {
		return nil, err
	}

	s.logger.Info("added book", zap.String("id", id), zap.String("title", title))
	return m, nil
}

// requireRecord checks that the record directory for id exists.
func (s *Store) requireRecord(id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if _, err := os.Stat(s.Dir(id)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return fmt.Errorf("checking record %q: %w", id, err)
	}
	return nil
}

// ReadContent returns the stored extracted text of a record verbatim.
func (s *Store) ReadContent(id string) (string, error) {
	if err := s.EnsureRoot(); err != nil {
		return "", err
	}
	if err := s.requireRecord(id); err != nil {
		return "", err
	}

	path := s.TextPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTextNotFound, path)
		}
		return "", fmt.Errorf("reading text file: %w", err)
	}
	return string(data), nil
}

// ReadMetadata loads the metadata of a record.
func (s *Store) ReadMetadata(id string) (*Metadata, error) {
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}
	if err := s.requireRecord(id); err != nil {
		return nil, err
	}
	return s.loadMetadata(id)
}

func (s *Store) loadMetadata(id string) (*Metadata, error) {
	path := s.MetadataPath(id)
	m, err := readMetadataFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMetadataNotFound, path)
		}
		return nil, fmt.Errorf("reading metadata: %w", err)
	}
	return m, nil
}

// UpdateMetadata sets the title and memo of a record. An empty value leaves
// the field unchanged, so a field cannot be cleared. updated_at is always
// refreshed and always moves forward.
func (s *Store) UpdateMetadata(id, title, memo string) (*Metadata, error) {
	if err := s.EnsureRoot(); err != nil {
		return nil, err
	}
	if err := s.requireRecord(id); err != nil {
		return nil, err
	}

	m, err := s.loadMetadata(id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		m.Title = title
	}
	if memo != "" {
		m.Memo = memo
	}
	m.UpdatedAt = FormatTime(s.nextUpdate(m.UpdatedAt))

	if err := writeMetadataFile(s.MetadataPath(id), m); err != nil {
		return nil, err
	}

	s.logger.Info("updated book metadata", zap.String("id", id))
	return m, nil
}

// nextUpdate returns the current time, or one tick after prev when the
// clock has not advanced past it at TimeLayout precision.
func (s *Store) nextUpdate(prev string) time.Time {
	now := s.now().Truncate(time.Microsecond)
	last, err := ParseTime(prev, now.Location())
	if err != nil {
		return now
	}
	if !now.After(last) {
		return last.Add(time.Microsecond)
	}
	return now
}

// SourcePath returns the stored copy of the original document. The copy is
// the regular file that is neither the text nor the metadata file; when the
// source itself was named {id}.txt, the text file is the copy.
func (s *Store) SourcePath(id string) (string, error) {
	if err := s.EnsureRoot(); err != nil {
		return "", err
	}
	if err := s.requireRecord(id); err != nil {
		return "", err
	}

	entries, err := os.ReadDir(s.Dir(id))
	if err != nil {
		return "", fmt.Errorf("reading record %q: %w", id, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.Type().IsRegular() || name == id+".txt" || name == id+".json" {
			continue
		}
		return filepath.Join(s.Dir(id), name), nil
	}

	if _, err := os.Stat(s.TextPath(id)); err == nil {
		return s.TextPath(id), nil
	}
	return "", fmt.Errorf("%w: no stored copy for %q", ErrSourceNotFound, id)
}

// Delete removes a record directory and everything in it.
func (s *Store) Delete(id string) error {
	if err := s.EnsureRoot(); err != nil {
		return err
	}
	if err := s.requireRecord(id); err != nil {
		return err
	}

	if err := os.RemoveAll(s.Dir(id)); err != nil {
		return fmt.Errorf("removing record %q: %w", id, err)
	}

	s.logger.Info("deleted book", zap.String("id", id))
	return nil
}
