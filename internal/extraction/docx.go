package extraction

import (
	"io"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

func docxText(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return stripDocxMarkup(doc.Editable().GetContent()), nil
}

func docxTextFromBytes(reader io.ReaderAt, size int64) (string, error) {
	doc, err := docx.ReadDocxFromMemory(reader, size)
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return stripDocxMarkup(doc.Editable().GetContent()), nil
}

// stripDocxMarkup reduces raw document.xml content to plain text,
// keeping paragraph boundaries as newlines.
func stripDocxMarkup(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	return strings.TrimSpace(content)
}
