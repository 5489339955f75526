// Package content fetches a URL and reduces it to a bounded UTF-8 text blob
// for analysis. Fetch failures are the caller's problem (client-visible
// errors); nothing here touches the decision core.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// MaxContentChars bounds the text handed to the model call.
const MaxContentChars = 50000

const maxBodyBytes = 4 << 20 // 4 MiB raw HTML cap before extraction

var ErrInvalidURL = errors.New("invalid content url")

// Fetcher retrieves and extracts readable text from a content URL
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a fetcher with a bounded request timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch downloads the URL and returns extracted text, truncated to
// MaxContentChars. HTML is reduced to visible text; scripts, styles and
// navigation chrome are dropped. Non-HTML responses pass through as plain
// text.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ErrInvalidURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", ErrInvalidURL
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("fetch failed: %w", err)
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "html") || looksLikeHTML(text) {
		text, err = extractText(text)
		if err != nil {
			return "", fmt.Errorf("extract failed: %w", err)
		}
	}

	return Truncate(strings.TrimSpace(text), MaxContentChars), nil
}

func looksLikeHTML(s string) bool {
	head := strings.ToLower(s)
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, footer, header, iframe").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var sb strings.Builder
	root.Find("h1, h2, h3, h4, p, li, pre, blockquote, td").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if t != "" {
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	})

	// Pages without paragraph structure fall back to the whole body text.
	if sb.Len() == 0 {
		return strings.Join(strings.Fields(root.Text()), " "), nil
	}
	return sb.String(), nil
}

// Truncate cuts s to at most n runes without splitting a multi-byte rune.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
