package exporter

import (
	"strings"
	"testing"

	"github.com/linknest/linknest/internal/model"
)

func TestExportHTML_EmptyForest(t *testing.T) {
	html := ExportHTML(nil)

	// Should have basic structure even when empty
	if !strings.Contains(html, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("expected DOCTYPE declaration")
	}
	if !strings.Contains(html, "<TITLE>Bookmarks</TITLE>") {
		t.Error("expected TITLE element")
	}
	if !strings.Contains(html, "<H1>Bookmarks</H1>") {
		t.Error("expected H1 element")
	}
}

func TestExportHTML_SingleBookmark(t *testing.T) {
	forest := []model.Node{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
	}

	html := ExportHTML(forest)

	if !strings.Contains(html, `<A HREF="https://github.com"`) {
		t.Error("expected bookmark URL")
	}
	if !strings.Contains(html, "GitHub</A>") {
		t.Error("expected bookmark title")
	}
}

func TestExportHTML_NestedFolder(t *testing.T) {
	forest := []model.Node{
		{
			ID:    "f1",
			Title: "Development",
			Children: []model.Node{
				{ID: "b1", Title: "React Docs", URL: "https://react.dev"},
			},
		},
	}

	html := ExportHTML(forest)

	if !strings.Contains(html, "<DT><H3>Development</H3>") {
		t.Error("expected folder header")
	}
	folderIdx := strings.Index(html, "Development")
	bookmarkIdx := strings.Index(html, "react.dev")
	if folderIdx == -1 || bookmarkIdx == -1 || bookmarkIdx < folderIdx {
		t.Error("expected bookmark nested after its folder")
	}
}

func TestExportHTML_EscapesSpecialCharacters(t *testing.T) {
	forest := []model.Node{
		{ID: "b1", Title: "Tom & Jerry <3", URL: "https://example.com?a=1&b=2"},
	}

	html := ExportHTML(forest)

	if !strings.Contains(html, "Tom &amp; Jerry &lt;3") {
		t.Error("expected escaped title")
	}
	if !strings.Contains(html, "a=1&amp;b=2") {
		t.Error("expected escaped URL")
	}
	if strings.Contains(html, "Tom & Jerry <3") {
		t.Error("unescaped title must not appear")
	}
}

func TestExportHTML_RoundTripStructure(t *testing.T) {
	forest := []model.Node{
		{
			ID:    "f1",
			Title: "Dev",
			Children: []model.Node{
				{ID: "b1", Title: "A", URL: "https://a.example"},
			},
		},
		{ID: "b2", Title: "B", URL: "https://b.example"},
	}

	html := ExportHTML(forest)

	// Every opened DL must be closed
	if strings.Count(html, "<DL><p>") != strings.Count(html, "</DL><p>") {
		t.Error("unbalanced DL elements")
	}
}
