// Package htmlutil fetches HTML pages, strips their markup for tokenizing,
// and extracts the absolute links they contain. It is the crawler's sole
// window onto the network and onto HTML structure.
package htmlutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrTooManyRedirects is returned when a fetch exceeds its redirect hop
// budget.
var ErrTooManyRedirects = errors.New("htmlutil: too many redirects")

// NewClient builds an http.Client that follows at most maxRedirects hops,
// matching the original implementation's fixed redirect budget for HTML
// fetches.
func NewClient(maxRedirects int) *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) > maxRedirects {
				return ErrTooManyRedirects
			}
			return nil
		},
	}
}

// Fetch retrieves url's body as a string. Any failure — non-200 status,
// malformed URL, network or IO error — is reported to the caller as an
// error; the crawler's contract is to treat that as empty content rather
// than abort the crawl.
func Fetch(client *http.Client, url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "concurrent-search-index/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("htmlutil: unexpected status %d fetching %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
