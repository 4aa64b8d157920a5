// ABOUTME: HTML sanitization policy applied before article content reaches the editor
// ABOUTME: Allow-list of tags and attributes; scripts, handlers, and everything else is stripped

package content

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Policy is the shared allow-list applied to article HTML before editing.
// Anything outside the allow-list is removed: disallowed elements are
// unwrapped (their allowed children survive), disallowed attributes are
// dropped, and script/style subtrees are discarded wholesale.
type Policy struct {
	AllowedTags  map[string]bool
	AllowedAttrs map[string]bool
}

// DefaultPolicy returns the policy used for article editing.
func DefaultPolicy() *Policy {
	return &Policy{
		AllowedTags: map[string]bool{
			"p": true, "br": true, "b": true, "i": true, "img": true,
			"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
			"table": true, "tr": true, "td": true, "th": true,
			"ul": true, "ol": true, "li": true,
		},
		AllowedAttrs: map[string]bool{
			"src": true, "alt": true, "title": true,
			"width": true, "height": true, "style": true,
		},
	}
}

// Sanitize parses raw HTML and returns a serialization containing only
// allow-listed tags and attributes.
func (p *Policy) Sanitize(raw string) (string, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	body := findBody(doc)
	if body == nil {
		return "", nil
	}

	clean := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	p.copyAllowed(body, clean)

	var buf bytes.Buffer
	for c := clean.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}

	return buf.String(), nil
}

// copyAllowed appends sanitized copies of src's children to dst.
func (p *Policy) copyAllowed(src, dst *html.Node) {
	for c := src.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			dst.AppendChild(&html.Node{Type: html.TextNode, Data: c.Data})
		case html.ElementNode:
			tag := strings.ToLower(c.Data)

			// script and style lose their entire subtree, not just the tag
			if tag == "script" || tag == "style" {
				continue
			}

			if !p.AllowedTags[tag] {
				p.copyAllowed(c, dst)
				continue
			}

			clone := &html.Node{
				Type:     html.ElementNode,
				Data:     tag,
				DataAtom: c.DataAtom,
			}
			for _, attr := range c.Attr {
				if attr.Namespace == "" && p.AllowedAttrs[strings.ToLower(attr.Key)] {
					clone.Attr = append(clone.Attr, attr)
				}
			}
			dst.AppendChild(clone)
			p.copyAllowed(c, clone)
		}
	}
}

// findBody locates the body element produced by html.Parse.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if body := findBody(c); body != nil {
			return body
		}
	}
	return nil
}
