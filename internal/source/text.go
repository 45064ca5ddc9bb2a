package source

import (
	"errors"
	"os"
	"strings"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// TextReader читает файл как есть
type TextReader struct{}

func (r *TextReader) Name() string {
	return "text"
}

func (r *TextReader) Read(path string) (string, error) {
	return readUTF8(path)
}

// readUTF8 читает файл целиком и приводит переводы строк \r\n и \r к \n
func readUTF8(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", ErrInvalidUTF8
	}
	return normalizeNewlines(string(data)), nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
