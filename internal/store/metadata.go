package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Metadata is the descriptive record stored as {id}.json.
type Metadata struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Memo      string `json:"memo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CSVHeader is the fixed column order used by WriteCSV.
var CSVHeader = []string{"id", "title", "memo", "created_at", "updated_at"}

// row returns the fields in CSVHeader order.
func (m Metadata) row() []string {
	return []string{m.ID, m.Title, m.Memo, m.CreatedAt, m.UpdatedAt}
}

const (
	// TimeLayout is the ISO-8601 local-time format written to metadata.
	TimeLayout = "2006-01-02T15:04:05.000000"

	// parseLayout accepts timestamps with or without fractional seconds.
	parseLayout = "2006-01-02T15:04:05"
)

// FormatTime renders t in TimeLayout.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// ParseTime parses a metadata timestamp in loc.
func ParseTime(s string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(parseLayout, s, loc)
}

func readMetadataFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// writeMetadataFile writes m with 4-space indentation. Non-ASCII text and
// HTML characters are written as-is.
func writeMetadataFile(path string, m *Metadata) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	return nil
}
