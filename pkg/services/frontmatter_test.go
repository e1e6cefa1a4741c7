package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFrontMatter_NoHeader(t *testing.T) {
	lines := []string{"# Title", "---", "a: 1"}

	fm := ExtractFrontMatter(lines)

	assert.Empty(t, fm.Meta)
	assert.Equal(t, lines, fm.Body(lines))
}

func TestExtractFrontMatter_EmptyFile(t *testing.T) {
	fm := ExtractFrontMatter(nil)

	assert.Empty(t, fm.Meta)
	assert.Empty(t, fm.Body(nil))
}

func TestExtractFrontMatter_KeyValues(t *testing.T) {
	lines := splitLines("---\na: 1\nb: 2\n---\nbody")

	fm := ExtractFrontMatter(lines)

	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, fm.Meta)
	assert.Equal(t, []string{"body"}, fm.Body(lines))
}

func TestExtractFrontMatter_IgnoresLinesWithoutKey(t *testing.T) {
	lines := []string{
		"  ---  ",
		"notakey value",
		": orphan value",
		"title:  Hello: World  ",
		"  id : first",
		"id: second",
		" --- ",
		"text",
	}

	fm := ExtractFrontMatter(lines)

	assert.Equal(t, map[string]string{"title": "Hello: World", "id": "second"}, fm.Meta)
	assert.NotContains(t, fm.Meta, "notakey value")
	assert.Equal(t, []string{"text"}, fm.Body(lines))
}

func TestExtractFrontMatter_UnclosedHeaderConsumesFile(t *testing.T) {
	lines := []string{"---", "title: Draft", "# Heading", "words"}

	fm := ExtractFrontMatter(lines)

	assert.Equal(t, "Draft", fm.Meta["title"])
	assert.Equal(t, len(lines), fm.BodyStart)
	assert.Empty(t, fm.Body(lines))
}

func TestExtractFrontMatter_ClosingDelimiterIsLastLine(t *testing.T) {
	lines := []string{"---", "id: x", "---"}

	fm := ExtractFrontMatter(lines)

	assert.Equal(t, "x", fm.Meta["id"])
	assert.Empty(t, fm.Body(lines))
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", []string{""}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"trailing blank line", "a\n\n", []string{"a", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitLines(tt.content))
		})
	}
}
