package source

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownReader убирает разметку, сохраняя строки абзацев и заголовков.
// Так маркеры вида **ВОПРОС:** или ## ОТВЕТ: становятся обычными строками.
type MarkdownReader struct{}

func (r *MarkdownReader) Name() string {
	return "markdown"
}

func (r *MarkdownReader) Read(path string) (string, error) {
	content, err := readUTF8(path)
	if err != nil {
		return "", err
	}
	return markdownToLines([]byte(content)), nil
}

// markdownToLines обходит AST и пишет текст, по строке на каждую строку исходника
func markdownToLines(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var buf strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				buf.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					buf.WriteString("\n")
				}
			}
		case *ast.String:
			if entering {
				buf.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				buf.Write(node.Label(source))
			}
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					segment := lines.At(i)
					buf.Write(segment.Value(source))
				}
				buf.WriteString("\n")
			}
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock:
			if !entering {
				buf.WriteString("\n")
			}
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}
