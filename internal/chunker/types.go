package chunker

// DefaultMaxChunkSize - лимит длины ответа в символах по умолчанию
const DefaultMaxChunkSize = 1500

// Config содержит параметры разбиения ответов
type Config struct {
	MaxChunkSize int // Максимальный размер ответа в символах
}

// Stats - итоги разбиения
type Stats struct {
	Blocks      int // Блоков на входе
	SplitBlocks int // Ответов, которые пришлось разбить
	Chunks      int // Блоков на выходе
}
