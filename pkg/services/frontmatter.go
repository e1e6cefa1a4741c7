package services

import "strings"

const frontMatterDelimiter = "---"

// FrontMatter is the key/value header of an article and the index of the
// first body line.
type FrontMatter struct {
	Meta      map[string]string
	BodyStart int
}

// ExtractFrontMatter reads a "---" delimited header of "key: value" lines.
// Lines without a colon (or starting with one) are skipped. When the closing
// delimiter is missing the header runs to the end of the file.
func ExtractFrontMatter(lines []string) FrontMatter {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return FrontMatter{Meta: map[string]string{}}
	}

	meta := make(map[string]string)
	index := 1
	for index < len(lines) {
		line := strings.TrimSpace(lines[index])
		index++
		if line == frontMatterDelimiter {
			break
		}
		colon := strings.Index(line, ":")
		if colon <= 0 {
			continue
		}
		key := strings.TrimSpace(line[:colon])
		meta[key] = strings.TrimSpace(line[colon+1:])
	}

	return FrontMatter{Meta: meta, BodyStart: min(index, len(lines))}
}

// Body returns the lines following the header.
func (fm FrontMatter) Body(lines []string) []string {
	if fm.BodyStart >= len(lines) {
		return nil
	}
	return lines[fm.BodyStart:]
}

// splitLines breaks file content into lines on \n, \r\n or \r. A final line
// terminator does not produce a trailing empty line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
