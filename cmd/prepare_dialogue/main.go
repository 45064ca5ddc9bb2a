package main

import (
	"log"
	"os"

	"prepare_dialogue/internal/app"
	"prepare_dialogue/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Всё, что видит пользователь, идёт в stdout
	out := log.New(os.Stdout, "", 0)

	inputFile, outputDir, err := app.ParseArgs(os.Args[1:])
	if err != nil {
		out.Println(app.Usage)
		os.Exit(1)
	}

	if err := app.CheckInput(inputFile); err != nil {
		out.Printf("❌ Файл не найден: %s", inputFile)
		os.Exit(1)
	}

	// Устанавливаем env переменные для парсинга
	os.Setenv("INPUT_FILE", inputFile)
	os.Setenv("OUTPUT_DIR", outputDir)

	// Загружаем .env (опционально)
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.Init(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	a, err := app.New(&cfg, out)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	if _, err := a.Run(); err != nil {
		log.Fatalf("❌ Подготовка прервана: %v", err)
	}
}
