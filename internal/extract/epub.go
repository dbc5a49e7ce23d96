package extract

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/taylorskalyo/goreader/epub"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"
)

// ErrMalformedEPUB is returned when the container structure cannot be read.
var ErrMalformedEPUB = errors.New("malformed EPUB")

// extractEPUB logs each failure class separately and reports it as no text.
func (e *Extractor) extractEPUB(path string) (string, bool, error) {
	text, err := epubText(path)
	switch {
	case err == nil:
		return text, true, nil
	case errors.Is(err, fs.ErrNotExist):
		e.logger.Error("EPUB file not found", zap.String("path", path), zap.Error(err))
	case errors.Is(err, ErrMalformedEPUB):
		e.logger.Error("failed to read EPUB container", zap.String("path", path), zap.Error(err))
	default:
		e.logger.Error("unexpected error while processing EPUB", zap.String("path", path), zap.Error(err))
	}
	return "", false, nil
}

// epubText returns the text of every content document: spine documents in
// reading order, then manifest documents the spine leaves out.
func epubText(path string) (text string, err error) {
	// The reader dereferences a missing container.xml entry.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrMalformedEPUB, r)
		}
	}()

	rc, err := epub.OpenReader(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrMalformedEPUB, err)
	}
	defer rc.Close()

	var parts []string
	for _, rf := range rc.Rootfiles {
		for _, item := range contentDocuments(rf) {
			raw, err := readItem(item)
			if err != nil {
				return "", err
			}
			doc, err := parseDocument(raw)
			if err != nil {
				return "", fmt.Errorf("parsing %s: %w", item.HREF, err)
			}
			if isNavDocument(doc) {
				continue
			}
			parts = append(parts, documentText(doc))
		}
	}

	return strings.Join(parts, "\n"), nil
}

// contentDocuments lists the XHTML/HTML items of a package, spine first.
func contentDocuments(rf *epub.Rootfile) []*epub.Item {
	seen := make(map[string]bool)
	var items []*epub.Item
	add := func(item *epub.Item) {
		if item == nil || seen[item.ID] || !isDocumentType(item.MediaType) {
			return
		}
		seen[item.ID] = true
		items = append(items, item)
	}

	for _, ref := range rf.Spine.Itemrefs {
		add(ref.Item)
	}
	for i := range rf.Manifest.Items {
		add(&rf.Manifest.Items[i])
	}
	return items
}

func isDocumentType(mediaType string) bool {
	switch mediaType {
	case "application/xhtml+xml", "text/html":
		return true
	}
	return false
}

func readItem(item *epub.Item) ([]byte, error) {
	r, err := item.Open()
	if err != nil {
		if errors.Is(err, epub.ErrBadManifest) {
			return nil, fmt.Errorf("%w: %s missing from archive", ErrMalformedEPUB, item.HREF)
		}
		return nil, fmt.Errorf("opening %s: %w", item.HREF, err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", item.HREF, err)
	}
	return raw, nil
}

var xmlEncodingDecl = regexp.MustCompile(`^\s*<\?xml[^>]*encoding=["']([A-Za-z0-9._-]+)["']`)

// decodeDocument converts raw document bytes to UTF-8. The declared or
// sniffed charset is used when known; undecodable bytes become U+FFFD.
func decodeDocument(raw []byte) string {
	contentType := "application/xhtml+xml"
	if m := xmlEncodingDecl.FindSubmatch(raw); m != nil {
		contentType += "; charset=" + string(m[1])
	}

	enc, _, _ := charset.DetermineEncoding(raw, contentType)
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		decoded = raw
	}
	return strings.ToValidUTF8(string(decoded), "\uFFFD")
}

func parseDocument(raw []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(decodeDocument(raw)))
}

// isNavDocument reports whether doc is the EPUB 3 navigation document,
// identified by its <nav epub:type="toc"> element.
func isNavDocument(doc *goquery.Document) bool {
	found := false
	doc.Find("nav").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, t := range strings.Fields(s.AttrOr("epub:type", "")) {
			if t == "toc" {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// documentText strips markup from a parsed content document.
func documentText(doc *goquery.Document) string {
	doc.Find("script, style, noscript").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text()
	}
	return body.Text()
}
