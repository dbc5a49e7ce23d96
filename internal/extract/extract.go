// Package extract turns document files into plain text.
//
// Supported formats:
//   - .pdf: text layer of every page, in page order
//   - .epub: spine documents with markup stripped, in reading order
//   - .txt: file contents verbatim
//
// Anything else is reported as unsupported and yields no text.
package extract

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format identifies a supported document type.
type Format int

const (
	FormatUnsupported Format = iota
	FormatPDF
	FormatEPUB
	FormatText
)

// String returns the lowercase name used in log fields.
func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatEPUB:
		return "epub"
	case FormatText:
		return "txt"
	default:
		return "unsupported"
	}
}

// Detect returns the document format for path based on its extension.
// The comparison is case-insensitive.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".epub":
		return FormatEPUB
	case ".txt":
		return FormatText
	default:
		return FormatUnsupported
	}
}

// SupportedExtensions lists the extensions Detect recognizes.
func SupportedExtensions() []string {
	return []string{".pdf", ".epub", ".txt"}
}

// Extractor dispatches files to the format-specific handlers.
type Extractor struct {
	logger *zap.Logger
}

// New creates an Extractor. A nil logger discards diagnostics.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract returns the text content of the file at path.
//
// ok is false when the format is unsupported or when PDF/EPUB extraction
// failed; those failures are logged, not returned. err is only set for
// plain-text files that cannot be read.
func (e *Extractor) Extract(path string) (text string, ok bool, err error) {
	format := Detect(path)

	switch format {
	case FormatPDF:
		e.logger.Info("processing file", zap.String("path", path), zap.Stringer("format", format))
		return e.extractPDF(path)
	case FormatEPUB:
		e.logger.Info("processing file", zap.String("path", path), zap.Stringer("format", format))
		return e.extractEPUB(path)
	case FormatText:
		e.logger.Info("processing file", zap.String("path", path), zap.Stringer("format", format))
		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	default:
		e.logger.Warn("unsupported file type",
			zap.String("ext", filepath.Ext(path)),
			zap.String("path", path),
			zap.Strings("supported", SupportedExtensions()))
		return "", false, nil
	}
}
