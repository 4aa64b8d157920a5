// ABOUTME: Codec between sanitized article HTML and the structured document used for editing
// ABOUTME: The document is a flat block list; serializing it back yields normalized HTML

package content

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// BlockType identifies the kind of a document block
type BlockType string

const (
	// BlockHeading is an h1..h6 element
	BlockHeading BlockType = "heading"

	// BlockParagraph is a paragraph of (possibly inline-formatted) text
	BlockParagraph BlockType = "paragraph"

	// BlockList is an ordered or unordered list
	BlockList BlockType = "list"

	// BlockTable is a table of plain-text cells
	BlockTable BlockType = "table"

	// BlockImage is a standalone image
	BlockImage BlockType = "image"
)

// Block is one structural unit of an article document.
type Block struct {
	Type BlockType

	// Level is the heading level (1..6), set for heading blocks
	Level int

	// Text holds the inner HTML of heading and paragraph blocks. The
	// content has already passed the sanitization policy.
	Text string

	// Items holds list entries as plain text
	Items []string

	// Ordered distinguishes ol from ul for list blocks
	Ordered bool

	// Rows holds table cells as plain text, row-major
	Rows [][]string

	// Src and Alt describe image blocks
	Src string
	Alt string
}

// Document is the structured editing representation of one article.
type Document struct {
	Blocks []Block
}

// FromHTML decodes sanitized HTML into a Document. Input must already have
// passed Policy.Sanitize; unexpected elements degrade to paragraphs.
func FromHTML(sanitized string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(sanitized))
	if err != nil {
		return nil, err
	}

	body := findBody(root)
	doc := &Document{}
	if body == nil {
		return doc, nil
	}

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := strings.TrimSpace(c.Data); text != "" {
				doc.Blocks = append(doc.Blocks, Block{Type: BlockParagraph, Text: html.EscapeString(text)})
			}
		case html.ElementNode:
			if block, ok := decodeElement(c); ok {
				doc.Blocks = append(doc.Blocks, block)
			}
		}
	}

	return doc, nil
}

func decodeElement(n *html.Node) (Block, bool) {
	tag := strings.ToLower(n.Data)
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return Block{
			Type:  BlockHeading,
			Level: int(tag[1] - '0'),
			Text:  innerHTML(n),
		}, true
	case "p":
		return Block{Type: BlockParagraph, Text: innerHTML(n)}, true
	case "ul", "ol":
		block := Block{Type: BlockList, Ordered: tag == "ol"}
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.Type == html.ElementNode && strings.ToLower(li.Data) == "li" {
				block.Items = append(block.Items, textContent(li))
			}
		}
		return block, true
	case "table":
		block := Block{Type: BlockTable}
		collectRows(n, &block)
		return block, true
	case "img":
		return Block{
			Type: BlockImage,
			Src:  attrValue(n, "src"),
			Alt:  attrValue(n, "alt"),
		}, true
	case "br":
		return Block{}, false
	default:
		if text := strings.TrimSpace(textContent(n)); text != "" {
			return Block{Type: BlockParagraph, Text: html.EscapeString(text)}, true
		}
		return Block{}, false
	}
}

// collectRows walks table subtrees (including tbody/thead produced by the
// parser) gathering tr elements into rows of plain-text cells.
func collectRows(n *html.Node, block *Block) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if strings.ToLower(c.Data) == "tr" {
			var row []string
			for cell := c.FirstChild; cell != nil; cell = cell.NextSibling {
				if cell.Type == html.ElementNode {
					tag := strings.ToLower(cell.Data)
					if tag == "td" || tag == "th" {
						row = append(row, textContent(cell))
					}
				}
			}
			block.Rows = append(block.Rows, row)
			continue
		}
		collectRows(c, block)
	}
}

// ToHTML serializes the document back to HTML. Plain-text fields are
// escaped; Text fields carry sanitized inner HTML and pass through.
func (d *Document) ToHTML() string {
	var b strings.Builder

	for _, block := range d.Blocks {
		switch block.Type {
		case BlockHeading:
			level := block.Level
			if level < 1 || level > 6 {
				level = 2
			}
			fmt.Fprintf(&b, "<h%d>%s</h%d>", level, block.Text, level)
		case BlockParagraph:
			fmt.Fprintf(&b, "<p>%s</p>", block.Text)
		case BlockList:
			tag := "ul"
			if block.Ordered {
				tag = "ol"
			}
			fmt.Fprintf(&b, "<%s>", tag)
			for _, item := range block.Items {
				fmt.Fprintf(&b, "<li>%s</li>", html.EscapeString(item))
			}
			fmt.Fprintf(&b, "</%s>", tag)
		case BlockTable:
			b.WriteString("<table>")
			for _, row := range block.Rows {
				b.WriteString("<tr>")
				for _, cell := range row {
					fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
				}
				b.WriteString("</tr>")
			}
			b.WriteString("</table>")
		case BlockImage:
			if block.Alt != "" {
				fmt.Fprintf(&b, `<img src="%s" alt="%s"/>`, html.EscapeString(block.Src), html.EscapeString(block.Alt))
			} else {
				fmt.Fprintf(&b, `<img src="%s"/>`, html.EscapeString(block.Src))
			}
		}
	}

	return b.String()
}

// innerHTML renders the children of n as sanitized HTML.
func innerHTML(n *html.Node) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		html.Render(&buf, c)
	}
	return strings.TrimSpace(buf.String())
}

// textContent flattens the subtree of n into plain text.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			b.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if strings.EqualFold(attr.Key, key) {
			return attr.Val
		}
	}
	return ""
}
