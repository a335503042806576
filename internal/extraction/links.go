package extraction

import (
	"regexp"
	"sort"
	"strings"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)

// AnnotateLinks appends an "Extracted Links:" block listing the unique URLs
// found in the text, labeling GitHub and LinkedIn links so the downstream
// enhancer can pick them up as contact fields. Text without URLs is returned
// unchanged.
func AnnotateLinks(text string) string {
	found := urlPattern.FindAllString(text, -1)
	if len(found) == 0 {
		return text
	}

	unique := make(map[string]struct{}, len(found))
	for _, url := range found {
		unique[url] = struct{}{}
	}
	urls := make([]string, 0, len(unique))
	for url := range unique {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	var sb strings.Builder
	sb.WriteString(text)
	sb.WriteString("\n\nExtracted Links:\n")
	for _, url := range urls {
		switch {
		case strings.Contains(url, "github.com"):
			sb.WriteString("GitHub: " + url + "\n")
		case strings.Contains(url, "linkedin.com"):
			sb.WriteString("LinkedIn: " + url + "\n")
		default:
			sb.WriteString("Link: " + url + "\n")
		}
	}
	return sb.String()
}
