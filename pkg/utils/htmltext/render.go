// ABOUTME: Renders sanitized article HTML as plain text for the terminal
// ABOUTME: Headings, paragraphs, lists, tables and images become text blocks

package htmltext

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattn/go-runewidth"
)

// Render converts article HTML into readable plain text. Block elements
// become paragraphs separated by blank lines.
func Render(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", err
	}

	var blocks []string
	doc.Find("body").Children().Each(func(_ int, sel *goquery.Selection) {
		if block := renderBlock(sel); block != "" {
			blocks = append(blocks, block)
		}
	})

	if len(blocks) == 0 {
		return collapse(doc.Text()), nil
	}
	return strings.Join(blocks, "\n\n"), nil
}

func renderBlock(sel *goquery.Selection) string {
	switch goquery.NodeName(sel) {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		title := collapse(sel.Text())
		if title == "" {
			return ""
		}
		return title + "\n" + strings.Repeat("-", runewidth.StringWidth(title))
	case "p":
		return collapse(sel.Text())
	case "ul":
		return renderList(sel, false)
	case "ol":
		return renderList(sel, true)
	case "table":
		return renderTable(sel)
	case "img":
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		if alt != "" {
			return fmt.Sprintf("[image: %s (%s)]", alt, src)
		}
		return fmt.Sprintf("[image: %s]", src)
	default:
		return collapse(sel.Text())
	}
}

func renderList(sel *goquery.Selection, ordered bool) string {
	var lines []string
	sel.Find("li").Each(func(i int, item *goquery.Selection) {
		text := collapse(item.Text())
		if text == "" {
			return
		}
		if ordered {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, text))
		} else {
			lines = append(lines, "  - "+text)
		}
	})
	return strings.Join(lines, "\n")
}

func renderTable(sel *goquery.Selection) string {
	var lines []string
	sel.Find("tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, collapse(cell.Text()))
		})
		if len(cells) > 0 {
			lines = append(lines, strings.Join(cells, " | "))
		}
	})
	return strings.Join(lines, "\n")
}

// collapse trims and folds runs of whitespace into single spaces
func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
