package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements are stripped (element and descendants dropped entirely)
// before link extraction, so links inside navigation chrome, scripts, and
// styles never reach the crawler.
var blockElements = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
	atom.Nav:    true,
	atom.Footer: true,
	atom.Head:   true,
}

// StripBlockElements removes script/style/nav/footer/head subtrees from
// content and returns the remaining HTML source, still fully tagged. This
// runs before link extraction so links never come from navigation chrome.
func StripBlockElements(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return content
	}
	removeBlockElements(doc)

	var out strings.Builder
	if err := html.Render(&out, doc); err != nil {
		return content
	}
	return out.String()
}

func removeBlockElements(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && blockElements[c.DataAtom] {
			n.RemoveChild(c)
			continue
		}
		removeBlockElements(c)
	}
}

// StripHTML walks content's parsed tag tree and returns only its text
// nodes, whitespace-collapsed. This is the last step before tokenizing a
// fetched page.
func StripHTML(content string) string {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return ""
	}

	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && blockElements[n.DataAtom] {
			return
		}
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
			text.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(text.String()), " ")
}
