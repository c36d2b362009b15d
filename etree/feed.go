// Package etree parses the page feed from its RSS source format.
package etree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docindex"
)

// ParseFeed reads every item element of an RSS document.
// Missing child elements yield empty fields.
func ParseFeed(r io.Reader) ([]docindex.FeedItem, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, docindex.Errorf(docindex.EMALFORMED, "parsing feed XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, docindex.Errorf(docindex.EMALFORMED, "empty feed XML")
	}

	items := []docindex.FeedItem{}
	for _, el := range doc.FindElements("//item") {
		items = append(items, docindex.FeedItem{
			Title:       childText(el, "title"),
			Description: childText(el, "description"),
			GUID:        childText(el, "guid"),
		})
	}
	return items, nil
}

// childText returns the trimmed text of the named child element.
func childText(el *etree.Element, tag string) string {
	child := el.SelectElement(tag)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

// WriteFeed writes items as an RSS 2.0 document.
func WriteFeed(w io.Writer, title string, items []docindex.FeedItem) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")
	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(title)

	for _, item := range items {
		el := channel.CreateElement("item")
		el.CreateElement("title").SetText(item.Title)
		el.CreateElement("description").SetText(item.Description)
		el.CreateElement("guid").SetText(item.GUID)
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing feed XML: %w", err)
	}
	return nil
}
