package app

import (
	"errors"
	"fmt"
	"os"
)

var (
	ErrMissingArguments = errors.New("missing arguments")
	ErrInputNotFound    = errors.New("input file not found")
)

// Usage печатается, когда не хватает аргументов
const Usage = "Использование: prepare_dialogue input.txt output_directory"

// ParseArgs берёт из позиционных аргументов входной файл и выходную директорию.
// Лишние аргументы игнорируются.
func ParseArgs(args []string) (inputFile, outputDir string, err error) {
	if len(args) < 2 {
		return "", "", ErrMissingArguments
	}
	return args[0], args[1], nil
}

// CheckInput проверяет, что входной файл существует
func CheckInput(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	return nil
}
