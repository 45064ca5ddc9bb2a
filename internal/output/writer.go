package output

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"prepare_dialogue/internal/dialogue"
)

// progressEvery - как часто сообщать о количестве созданных файлов
const progressEvery = 10

// Writer сохраняет каждый блок в отдельный файл NNN_qa.txt
type Writer struct {
	dir string
	log *log.Logger
}

// NewWriter создаёт writer для директории dir; прогресс пишется в logger
func NewWriter(dir string, logger *log.Logger) *Writer {
	return &Writer{dir: dir, log: logger}
}

// FileName возвращает имя файла для блока с номером index (с единицы)
func FileName(index int) string {
	return fmt.Sprintf("%03d_qa.txt", index)
}

// Format собирает содержимое файла: одна строка вопроса и одна строка ответа
func Format(block dialogue.Block) string {
	return fmt.Sprintf("%s %s\n%s %s\n",
		dialogue.QuestionMarker, block.Question,
		dialogue.AnswerMarker, block.Answer,
	)
}

// WriteBlocks создаёт директорию и записывает блоки по порядку.
// Возвращает количество записанных файлов.
func (w *Writer) WriteBlocks(blocks []dialogue.Block) (int, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	total := len(blocks)
	for i, block := range blocks {
		index := i + 1
		path := filepath.Join(w.dir, FileName(index))

		if err := os.WriteFile(path, []byte(Format(block)), 0644); err != nil {
			return i, fmt.Errorf("failed to write %s: %w", path, err)
		}

		if index%progressEvery == 0 {
			w.log.Printf("  ✓ Создано %d/%d файлов...", index, total)
		}
	}

	w.log.Printf("\n✅ Создано %d файлов в директории: %s", total, w.dir)
	return total, nil
}
