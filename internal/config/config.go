package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	InputFile    string `env:"INPUT_FILE"`
	OutputDir    string `env:"OUTPUT_DIR"`
	InputFormat  string `env:"INPUT_FORMAT"`
	ChunkSize    int    `env:"CHUNK_SIZE" envDefault:"1500"`
	ImportDir    string `env:"IMPORT_DIR" envDefault:"/www/oracool/knowledge_examples/personal"`
	ImportUserID string `env:"IMPORT_USER_ID" envDefault:"858361483"`
}

func Init(cfg interface{}) error {
	return env.Parse(cfg)
}

// Validate проверяет значения, которые нельзя исправить молча
func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	return nil
}
