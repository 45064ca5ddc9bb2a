package app

import (
	"fmt"
	"log"
	"os"
	"strings"

	"prepare_dialogue/internal/chunker"
	"prepare_dialogue/internal/config"
	"prepare_dialogue/internal/dialogue"
	"prepare_dialogue/internal/output"
	"prepare_dialogue/internal/source"
)

type App struct {
	cfg     *config.Config
	out     *log.Logger
	reader  source.Reader
	chunker *chunker.QAChunker
	writer  *output.Writer
}

// New собирает конвейер: чтение -> разбор -> разбиение -> запись
func New(cfg *config.Config, out *log.Logger) (*App, error) {
	reader, err := source.ForFile(cfg.InputFile, cfg.InputFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to get reader: %w", err)
	}

	return &App{
		cfg:     cfg,
		out:     out,
		reader:  reader,
		chunker: chunker.NewQAChunker(chunker.Config{MaxChunkSize: cfg.ChunkSize}),
		writer:  output.NewWriter(cfg.OutputDir, out),
	}, nil
}

// Run выполняет подготовку диалога и возвращает количество созданных файлов
func (a *App) Run() (int, error) {
	a.printBanner()

	content, err := a.reader.Read(a.cfg.InputFile)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", a.cfg.InputFile, err)
	}

	count, err := a.Process(content)
	if err != nil {
		return count, err
	}

	a.printImportHint()
	return count, nil
}

// Process разбирает текст диалога и записывает блоки в выходную директорию
func (a *App) Process(content string) (int, error) {
	blocks := dialogue.Parse(content)
	a.out.Printf("📊 Найдено блоков Q&A: %d", len(blocks))

	final, stats := a.chunker.Split(blocks)
	a.out.Printf("📏 Разбито длинных ответов: %d", stats.SplitBlocks)
	a.out.Printf("📝 Итого файлов будет создано: %d", stats.Chunks)
	a.out.Println()

	count, err := a.writer.WriteBlocks(final)
	if err != nil {
		return count, fmt.Errorf("failed to write blocks: %w", err)
	}
	return count, nil
}

func (a *App) printBanner() {
	a.out.Println("╔═══════════════════════════════════════════════════════════════╗")
	a.out.Println("║     📝 ПОДГОТОВКА ДИАЛОГА ДЛЯ ИМПОРТА                        ║")
	a.out.Println("╚═══════════════════════════════════════════════════════════════╝")
	a.out.Println()
	a.out.Printf("📥 Входной файл: %s", a.cfg.InputFile)
	a.out.Printf("📂 Выходная директория: %s", a.cfg.OutputDir)
	a.out.Println()
	a.out.Printf("🔄 Обработка (%s)...", a.reader.Name())
	a.out.Println()
}

// printImportHint подсказывает команду импорта готовых файлов в базу знаний
func (a *App) printImportHint() {
	a.out.Println()
	a.out.Println("💡 Теперь импортируйте:")
	a.out.Printf("   cd %s", a.cfg.ImportDir)
	a.out.Printf("   ./import_dialogue.sh %s %s", a.cfg.ImportUserID, baseName(a.cfg.OutputDir))
	a.out.Println()
}

// baseName возвращает часть пути после последнего разделителя;
// для пути с разделителем на конце это пустая строка
func baseName(path string) string {
	i := strings.LastIndexFunc(path, func(r rune) bool {
		return r == '/' || r == os.PathSeparator
	})
	return path[i+1:]
}
