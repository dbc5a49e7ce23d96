package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// extractPDF reads the text layer of every page. The pdf package panics on
// some malformed inputs, so panics are converted into a failed extraction.
func (e *Extractor) extractPDF(path string) (text string, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("failed to process PDF",
				zap.String("path", path),
				zap.Error(fmt.Errorf("pdf reader panic: %v", r)))
			text, ok, err = "", false, nil
		}
	}()

	text, err = pdfText(path)
	if err != nil {
		e.logger.Error("failed to process PDF", zap.String("path", path), zap.Error(err))
		return "", false, nil
	}
	return text, true, nil
}

// pdfText concatenates the plain text of all pages in page order.
func pdfText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("reading page %d: %w", i, err)
		}
		builder.WriteString(text)
	}

	return builder.String(), nil
}
