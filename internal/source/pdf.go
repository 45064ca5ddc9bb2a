package source

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// PDFReader извлекает текст страниц PDF по порядку
type PDFReader struct{}

func (r *PDFReader) Name() string {
	return "pdf"
}

func (r *PDFReader) Read(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var buf strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, err)
		}
		buf.WriteString(pageText)
		buf.WriteString("\n")
	}

	return normalizeNewlines(buf.String()), nil
}
