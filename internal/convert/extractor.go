package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoTextLayer marks PDFs whose pages yield no meaningful text, usually
// scanned images without an OCR layer.
var ErrNoTextLayer = errors.New("no extractable text layer")

// Text shorter than this after trimming counts as no text layer.
const minMeaningfulText = 50

// Extractor pulls the plain-text layer out of PDF files.
type Extractor struct {
	maxTextSize int
}

// NewExtractor creates an extractor with a bound on accumulated text size.
func NewExtractor() *Extractor {
	return &Extractor{
		maxTextSize: 10 * 1024 * 1024, // 10MB text limit
	}
}

// ExtractText returns the concatenated text of every page, separated by
// form feeds. Pages that fail to decode are skipped so one broken page
// does not lose the document.
func (e *Extractor) ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	totalLength := 0

	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		content := e.pageText(reader, pageNum)
		if content == "" {
			continue
		}

		if totalLength+len(content) > e.maxTextSize {
			remaining := e.maxTextSize - totalLength
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}

		builder.WriteString(content)
		totalLength += len(content)

		if pageNum < reader.NumPage() {
			builder.WriteString("\f")
		}
	}

	text := builder.String()
	meaningful := strings.TrimSpace(strings.ReplaceAll(text, "\f", " "))
	if len(meaningful) < minMeaningfulText {
		return "", fmt.Errorf("%w: %s", ErrNoTextLayer, path)
	}

	return text, nil
}

// pageText decodes a single page's text content.
func (e *Extractor) pageText(reader *pdf.Reader, pageNum int) (content string) {
	defer func() {
		// Recover from any panics while walking malformed page trees
		if recover() != nil {
			content = ""
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}
