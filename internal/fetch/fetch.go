// Package fetch retrieves job postings from URLs and reduces the HTML to
// plain text suitable for keyword extraction.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout bounds the HTTP round-trip for a posting fetch.
const DefaultTimeout = 30 * time.Second

// userAgent identifies the tool; some job boards reject the Go default.
const userAgent = "Mozilla/5.0 (compatible; ResumeOptimizer/1.0)"

// noiseSelectors are removed from the document before text extraction.
var noiseSelectors = []string{"script", "style", "noscript", "nav", "header", "footer", "iframe", "svg", "form"}

var blankLines = regexp.MustCompile(`\n{3,}`)

// Error wraps a failure to fetch or process a URL.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// JobDescription fetches a job posting URL and returns its text content.
// When the plain HTTP fetch yields too little text (a JavaScript-rendered
// page) and useBrowser is set, it falls back to a headless browser.
func JobDescription(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := HTMLToText(html)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}

	if needsBrowser(text) && useBrowser {
		rendered, berr := renderWithBrowser(ctx, urlStr, DefaultTimeout)
		if berr != nil {
			return "", &Error{URL: urlStr, Message: "browser fallback failed", Cause: berr}
		}
		text, err = HTMLToText(rendered)
		if err != nil {
			return "", &Error{URL: urlStr, Message: "failed to parse rendered HTML", Cause: err}
		}
	}

	return text, nil
}

// HTMLToText strips markup and noise elements, returning readable text.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find(strings.Join(noiseSelectors, ", ")).Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes: skip wrappers whose children will be visited.
		if s.Children().Filter("h1, h2, h3, h4, p, li, td, div").Length() > 0 {
			return
		}
		line := strings.TrimSpace(s.Text())
		if line != "" {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		text = strings.TrimSpace(root.Text())
	}
	return strings.TrimSpace(blankLines.ReplaceAllString(text, "\n\n")), nil
}

func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", &Error{URL: urlStr, Message: "invalid URL"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	client := &http.Client{Timeout: DefaultTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read body", Cause: err}
	}
	return string(body), nil
}
