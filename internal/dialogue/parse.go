package dialogue

import (
	"strings"
)

// readState определяет, к какому полю относятся строки без маркера
type readState int

const (
	readingQuestion readState = iota
	readingAnswer
)

// parser накапливает текущий блок и готовые блоки
type parser struct {
	current Block
	state   readState
	blocks  []Block
}

// Parse разбивает текст диалога на блоки вопрос/ответ
func Parse(content string) []Block {
	return ParseLines(strings.Split(content, "\n"))
}

// ParseLines собирает блоки из строк в порядке появления маркеров ВОПРОС:.
// Блоки без вопроса или без ответа отбрасываются.
func ParseLines(lines []string) []Block {
	p := &parser{}
	for _, line := range lines {
		p.step(TrimSpace(line))
	}
	p.flush()
	return p.blocks
}

func (p *parser) step(line string) {
	switch {
	case strings.HasPrefix(line, QuestionMarker):
		p.flush()
		p.current = Block{Question: TrimSpace(strings.TrimPrefix(line, QuestionMarker))}
		p.state = readingQuestion
	case strings.HasPrefix(line, AnswerMarker):
		p.current.Answer = TrimSpace(strings.TrimPrefix(line, AnswerMarker))
		p.state = readingAnswer
	case line == "":
		// пустые строки не разделяют и не продолжают поля
	case p.state == readingAnswer:
		p.current.Answer = joinLine(p.current.Answer, line)
	default:
		p.current.Question = joinLine(p.current.Question, line)
	}
}

// flush сохраняет текущий блок, если он полный
func (p *parser) flush() {
	if p.current.Complete() {
		p.blocks = append(p.blocks, p.current)
	}
}

func joinLine(field, line string) string {
	if field == "" {
		return line
	}
	return field + " " + line
}
