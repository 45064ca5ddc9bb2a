package chunker

import (
	"fmt"
	"strings"

	"prepare_dialogue/internal/dialogue"
)

// QAChunker разбивает слишком длинные ответы на части по предложениям
type QAChunker struct {
	config Config
}

// NewQAChunker создаёт chunker; неположительный лимит заменяется значением по умолчанию
func NewQAChunker(config Config) *QAChunker {
	if config.MaxChunkSize <= 0 {
		config.MaxChunkSize = DefaultMaxChunkSize
	}
	return &QAChunker{config: config}
}

// MaxChunkSize возвращает действующий лимит
func (c *QAChunker) MaxChunkSize() int {
	return c.config.MaxChunkSize
}

// Split возвращает новые блоки, сохраняя порядок исходных.
// Части одного ответа идут подряд.
func (c *QAChunker) Split(blocks []dialogue.Block) ([]dialogue.Block, Stats) {
	stats := Stats{Blocks: len(blocks)}
	result := make([]dialogue.Block, 0, len(blocks))

	for _, block := range blocks {
		// Короткий ответ - оставляем как есть
		if CharCount(block.Answer) <= c.config.MaxChunkSize {
			result = append(result, block)
			continue
		}

		stats.SplitBlocks++
		result = append(result, c.splitBlock(block)...)
	}

	stats.Chunks = len(result)
	return result, stats
}

// splitBlock жадно набирает предложения в части, пока они влезают в лимит
func (c *QAChunker) splitBlock(block dialogue.Block) []dialogue.Block {
	var parts []dialogue.Block
	var current strings.Builder
	currentLen := 0
	partNum := 1

	for _, sentence := range SplitBySentences(block.Answer) {
		sentenceLen := CharCount(sentence)

		if currentLen+sentenceLen > c.config.MaxChunkSize {
			// Сохраняем текущую часть
			if current.Len() > 0 {
				parts = append(parts, dialogue.Block{
					Question: partTitle(block.Question, partNum),
					Answer:   dialogue.TrimSpace(current.String()),
				})
				partNum++
			}
			current.Reset()
			currentLen = 0
		}

		current.WriteString(sentence)
		current.WriteString(" ")
		currentLen += sentenceLen + 1
	}

	// Последняя часть получает номер, только если до неё уже были части
	if current.Len() > 0 {
		question := block.Question
		if partNum > 1 {
			question = partTitle(block.Question, partNum)
		}
		parts = append(parts, dialogue.Block{
			Question: question,
			Answer:   dialogue.TrimSpace(current.String()),
		})
	}

	return parts
}

func partTitle(question string, partNum int) string {
	return fmt.Sprintf("%s (часть %d)", question, partNum)
}
