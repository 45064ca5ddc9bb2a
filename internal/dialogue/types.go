package dialogue

// Маркеры строк диалога. Сравниваются как литеральный префикс, с учётом регистра.
const (
	QuestionMarker = "ВОПРОС:"
	AnswerMarker   = "ОТВЕТ:"
)

// Block - одна пара вопрос/ответ
type Block struct {
	Question string
	Answer   string
}

// Complete сообщает, заполнены ли оба поля блока
func (b Block) Complete() bool {
	return b.Question != "" && b.Answer != ""
}
