package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader достаёт из входного файла текст диалога
type Reader interface {
	// Read возвращает содержимое файла как UTF-8 текст с переводами строк \n
	Read(path string) (string, error)

	// Name возвращает название reader'а для логирования
	Name() string
}

// ForFile возвращает reader для файла. Явно указанный формат важнее расширения.
// Файлы .md читаются как текст: разметку снимает только явный формат md.
func ForFile(path, format string) (Reader, error) {
	if format != "" {
		return ForFormat(format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFReader{}, nil
	case ".docx":
		return &DOCXReader{}, nil
	default:
		return &TextReader{}, nil
	}
}

// ForFormat возвращает reader по названию формата
func ForFormat(format string) (Reader, error) {
	switch strings.ToLower(format) {
	case "txt", "text":
		return &TextReader{}, nil
	case "md", "markdown":
		return &MarkdownReader{}, nil
	case "pdf":
		return &PDFReader{}, nil
	case "docx":
		return &DOCXReader{}, nil
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}
