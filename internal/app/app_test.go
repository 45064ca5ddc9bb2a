package app

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prepare_dialogue/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, input string, chunkSize int) (*App, *config.Config, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "dialog.txt")
	require.NoError(t, os.WriteFile(inputFile, []byte(input), 0644))

	cfg := &config.Config{
		InputFile:    inputFile,
		OutputDir:    filepath.Join(dir, "out", "dialog"),
		ChunkSize:    chunkSize,
		ImportDir:    "/srv/knowledge",
		ImportUserID: "7",
	}

	var buf bytes.Buffer
	a, err := New(cfg, log.New(&buf, "", 0))
	require.NoError(t, err)
	return a, cfg, &buf
}

func TestParseArgs(t *testing.T) {
	_, _, err := ParseArgs(nil)
	assert.ErrorIs(t, err, ErrMissingArguments)

	_, _, err = ParseArgs([]string{"only-input.txt"})
	assert.ErrorIs(t, err, ErrMissingArguments)

	in, out, err := ParseArgs([]string{"in.txt", "out", "extra"})
	require.NoError(t, err)
	assert.Equal(t, "in.txt", in)
	assert.Equal(t, "out", out)
}

func TestCheckInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	assert.ErrorIs(t, CheckInput(missing), ErrInputNotFound)

	existing := filepath.Join(t.TempDir(), "dialog.txt")
	require.NoError(t, os.WriteFile(existing, nil, 0644))
	assert.NoError(t, CheckInput(existing))
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&config.Config{InputFile: "dialog.txt", InputFormat: "odt"}, log.New(&bytes.Buffer{}, "", 0))
	assert.Error(t, err)
}

func TestRun_SingleBlock(t *testing.T) {
	a, cfg, logs := newTestApp(t, "ВОПРОС: A?\nОТВЕТ: short.\n", 1500)

	n, err := a.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "001_qa.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ВОПРОС: A?\nОТВЕТ: short.\n", string(data))

	assert.Contains(t, logs.String(), "Найдено блоков Q&A: 1")
	assert.Contains(t, logs.String(), "Разбито длинных ответов: 0")
	assert.Contains(t, logs.String(), "cd /srv/knowledge")
	assert.Contains(t, logs.String(), "./import_dialogue.sh 7 dialog")
}

func TestRun_EmptyInput(t *testing.T) {
	a, cfg, _ := newTestApp(t, "", 1500)

	n, err := a.Run()
	require.NoError(t, err)
	assert.Zero(t, n)

	entries, err := os.ReadDir(cfg.OutputDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_SplitsLongAnswers(t *testing.T) {
	sentence := strings.Repeat("о", 148) + "."
	answer := strings.TrimSpace(strings.Repeat(sentence+" ", 20))
	input := "Преамбула без маркера\n" +
		"ВОПРОС: Короткий?\nОТВЕТ: Да.\n\n" +
		"ВОПРОС: Длинный?\nОТВЕТ: " + answer + "\n"

	a, cfg, logs := newTestApp(t, input, 1500)
	n, err := a.Run()
	require.NoError(t, err)
	require.Equal(t, 3, n)

	want := []string{
		"ВОПРОС: Короткий?\n",
		"ВОПРОС: Длинный? (часть 1)\n",
		"ВОПРОС: Длинный? (часть 2)\n",
	}
	for i, name := range []string{"001_qa.txt", "002_qa.txt", "003_qa.txt"} {
		data, err := os.ReadFile(filepath.Join(cfg.OutputDir, name))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), want[i]), name)
		assert.Equal(t, 2, strings.Count(string(data), "\n"), name)
	}

	assert.Contains(t, logs.String(), "Найдено блоков Q&A: 2")
	assert.Contains(t, logs.String(), "Разбито длинных ответов: 1")
	assert.Contains(t, logs.String(), "Итого файлов будет создано: 3")
}

func TestRun_ReadError(t *testing.T) {
	a, cfg, _ := newTestApp(t, "ВОПРОС: \xff\nОТВЕТ: b\n", 1500)

	_, err := a.Run()
	assert.Error(t, err)

	_, statErr := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "dialog", baseName("out/dialog"))
	assert.Equal(t, "dialog", baseName("dialog"))
	assert.Equal(t, "", baseName("out/dialog/"))
	assert.Equal(t, "", baseName(""))
}

func TestRun_ImportHintKeepsTrailingSlash(t *testing.T) {
	a, cfg, logs := newTestApp(t, "ВОПРОС: A?\nОТВЕТ: B.\n", 1500)
	cfg.OutputDir += "/"

	_, err := a.Run()
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "./import_dialogue.sh 7 \n")
}
