package chunker

import (
	"unicode/utf8"

	"prepare_dialogue/internal/dialogue"
)

// CharCount возвращает длину текста в символах, а не в байтах
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

// SplitBySentences режет текст после '.', '!' или '?', за которыми идут пробельные
// символы. Пробелы между предложениями отбрасываются. Если текст заканчивается
// знаком и пробелом, последним элементом будет пустая строка.
func SplitBySentences(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		end := i
		for i < len(text) {
			next, nextSize := utf8.DecodeRuneInString(text[i:])
			if !dialogue.IsSpace(next) {
				break
			}
			i += nextSize
		}
		if i == end {
			continue
		}

		sentences = append(sentences, text[start:end])
		start = i
	}

	return append(sentences, text[start:])
}
