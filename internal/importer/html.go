package importer

import (
	"io"
	"strings"

	"github.com/linknest/linknest/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML into a node forest.
// Folders become URL-less nodes; every A element with an HREF becomes
// a leaf. IDs are assigned here, not taken from the file.
func ParseHTMLBookmarks(r io.Reader) ([]model.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var forest []model.Node

	// Track the current folder nesting; nil entry = root
	var folderStack []*model.Node
	var pendingFolder *model.Node // folder waiting to be pushed on next DL

	appendNode := func(n model.Node) *model.Node {
		if len(folderStack) == 0 {
			forest = append(forest, n)
			return &forest[len(forest)-1]
		}
		parent := folderStack[len(folderStack)-1]
		parent.Children = append(parent.Children, n)
		return &parent.Children[len(parent.Children)-1]
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - get name from text content
				name := getTextContent(n)
				if name != "" {
					folder := appendNode(model.Node{
						ID:    model.NewID(),
						Title: name,
					})
					// Pushed when we see the folder's DL
					pendingFolder = folder
				}
				return // Don't recurse into H3

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				title := getTextContent(n)
				if title == "" {
					title = href // fallback to URL as title
				}

				appendNode(model.Node{
					ID:    model.NewID(),
					Title: title,
					URL:   href,
				})
				return // Don't recurse into A

			case "dl":
				// Definition list - marks folder contents
				pushedFolder := false
				if pendingFolder != nil {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = nil
					pushedFolder = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushedFolder && len(folderStack) > 0 {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return // Don't recurse further, we handled children
			}
		}

		// Recurse into children
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return forest, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
