package htmlutil

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ExtractLinks walks content (expected to be pre-strip HTML) and returns
// every absolute, normalized http(s) URL reachable from an <a href>,
// resolved relative to base.
func ExtractLinks(base *url.URL, content string) []string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return nil
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				if link := resolveLink(base, attr.Val); link != "" {
					links = append(links, link)
				}
				break
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

func resolveLink(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return NormalizeURL(resolved).String()
}

// NormalizeURL lowercases the scheme and host, strips the fragment, and
// ensures a non-empty path — the same normalization applied to the crawl
// seed, so that "http://Example.com" and "http://example.com/" compare
// equal as visited-set members.
func NormalizeURL(u *url.URL) *url.URL {
	normalized := *u
	normalized.Scheme = strings.ToLower(normalized.Scheme)
	normalized.Host = strings.ToLower(normalized.Host)
	normalized.Fragment = ""
	if normalized.Path == "" {
		normalized.Path = "/"
	}
	return &normalized
}

// ParseSeed parses and normalizes a seed URL string.
func ParseSeed(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	return NormalizeURL(u), nil
}
