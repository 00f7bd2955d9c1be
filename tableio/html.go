package tableio

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html"

	"tabfile/dataframe"
	apperrors "tabfile/errors"
)

// readHTML extracts the first <table> element from an HTML document.
// HTML is a read-only format.
func (r *Reader) readHTML(path string) (*dataframe.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	doc, err := html.Parse(stripBOM(file))
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to parse HTML file %s", path), err)
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("table element in %s", path))
	}

	var records [][]string
	walkElements(table, "tr", func(tr *html.Node) {
		var cells []string
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				cells = append(cells, strings.TrimSpace(nodeText(c)))
			}
		}
		if len(cells) > 0 {
			records = append(records, cells)
		}
	})

	r.logger.Debug("extracted HTML table",
		slog.String("path", path),
		slog.Int("row_count", len(records)))

	return r.tableFromRecords(records)
}

// findElement returns the first element with the given tag in document
// order.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// walkElements calls fn for every element with the given tag below n.
func walkElements(n *html.Node, tag string, fn func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			fn(c)
			continue
		}
		walkElements(c, tag, fn)
	}
}

// nodeText concatenates all text nodes below n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
