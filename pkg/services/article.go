package services

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"myblog/pkg/models"
)

const publishDateLayout = "2006-01-02"

// ReadArticleFile parses one Markdown file into an article, filling id, title
// and publish date from the file name, first heading and mtime when the
// header does not provide them.
func ReadArticleFile(path string) (models.Article, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.Article{}, articleReadError(path, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return models.Article{}, articleReadError(path, err)
	}

	lines := splitLines(string(content))
	fm := ExtractFrontMatter(lines)
	body := fm.Body(lines)
	stem := fileStem(filepath.Base(path))

	return models.Article{
		ID:          resolveID(fm.Meta, stem),
		Title:       resolveTitle(fm.Meta, body, stem),
		PublishDate: resolvePublishDate(fm.Meta, info.ModTime()),
		Content:     joinContent(body),
	}, nil
}

func resolveID(meta map[string]string, stem string) string {
	return chooseValue(meta["id"], stem)
}

func resolveTitle(meta map[string]string, body []string, stem string) string {
	if title := meta["title"]; !isBlank(title) {
		return title
	}
	if heading, ok := firstHeading(body); ok {
		return heading
	}
	return stem
}

func resolvePublishDate(meta map[string]string, modified time.Time) string {
	return chooseValue(meta["publishDate"], modified.UTC().Format(publishDateLayout))
}

// firstHeading looks only at the first line starting with "#"; a heading
// with no text yields nothing.
func firstHeading(body []string) (string, bool) {
	for _, line := range body {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "#") {
			continue
		}
		heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
		return heading, heading != ""
	}
	return "", false
}

// joinContent keeps trailing text verbatim and drops leading whitespace.
func joinContent(body []string) string {
	return strings.TrimLeftFunc(strings.Join(body, "\n"), unicode.IsSpace)
}

// fileStem drops the extension unless the only dot leads the name.
func fileStem(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}

func chooseValue(candidate, fallback string) string {
	if isBlank(candidate) {
		return fallback
	}
	return candidate
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
