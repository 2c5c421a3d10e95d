package model_test

import (
	"errors"
	"testing"

	"github.com/linknest/linknest/internal/model"
)

func TestFlatten_LeavesOnlyPreOrder(t *testing.T) {
	forest := []model.Node{
		{
			ID:    "root",
			Title: "Bookmarks Bar",
			Children: []model.Node{
				{ID: "b1", Title: "GitHub", URL: "https://github.com"},
				{
					ID:    "f1",
					Title: "Dev",
					Children: []model.Node{
						{ID: "b2", Title: "Go Docs", URL: "https://go.dev/doc"},
						{ID: "b3", Title: "Hacker News", URL: "https://news.ycombinator.com"},
					},
				},
				{ID: "b4", Title: "Weather", URL: "https://weather.example.com"},
			},
		},
	}

	entries := model.Flatten(forest)

	wantIDs := []string{"b1", "b2", "b3", "b4"}
	if len(entries) != len(wantIDs) {
		t.Fatalf("expected %d entries, got %d", len(wantIDs), len(entries))
	}
	for i, want := range wantIDs {
		if entries[i].ID != want {
			t.Errorf("entry %d: expected ID %q, got %q", i, want, entries[i].ID)
		}
	}
}

func TestFlatten_FoldersNeverEmitted(t *testing.T) {
	forest := []model.Node{
		{ID: "f1", Title: "Empty Folder"},
		{
			ID:    "f2",
			Title: "Nested",
			Children: []model.Node{
				{ID: "f3", Title: "Deeper"},
			},
		},
	}

	entries := model.Flatten(forest)
	if len(entries) != 0 {
		t.Errorf("expected 0 entries from folder-only forest, got %d", len(entries))
	}
}

func TestFlatten_EmptyForest(t *testing.T) {
	if entries := model.Flatten(nil); len(entries) != 0 {
		t.Errorf("expected 0 entries for nil forest, got %d", len(entries))
	}
}

func TestJoin_TagLookup(t *testing.T) {
	entries := []model.FlatEntry{
		{ID: "b1", Title: "GitHub", URL: "https://github.com"},
		{ID: "b2", Title: "Go Docs", URL: "https://go.dev/doc"},
	}
	tags := map[string]string{
		"tag-b1": "work",
	}

	joined := model.Join(entries, tags)

	if len(joined) != 2 {
		t.Fatalf("expected 2 joined entries, got %d", len(joined))
	}
	if joined[0].Tag == nil || *joined[0].Tag != "work" {
		t.Errorf("expected tag 'work' for b1, got %v", joined[0].Tag)
	}
	if joined[1].Tag != nil {
		t.Errorf("expected nil tag for b2, got %q", *joined[1].Tag)
	}
}

func TestJoin_EmptyTagDistinctFromAbsent(t *testing.T) {
	entries := []model.FlatEntry{{ID: "b1", Title: "A", URL: "https://a.example"}}
	tags := map[string]string{"tag-b1": ""}

	joined := model.Join(entries, tags)

	if joined[0].Tag == nil {
		t.Fatal("expected non-nil tag for present empty-string record")
	}
	if *joined[0].Tag != "" {
		t.Errorf("expected empty tag value, got %q", *joined[0].Tag)
	}
}

func TestClassifyTag(t *testing.T) {
	tests := []struct {
		tag  string
		want model.TagKind
	}{
		{"reading", model.TagPreset},
		{"Reading", model.TagPreset},
		{"PERSONAL", model.TagPreset},
		{"videos", model.TagPreset},
		{"my cool site", model.TagCustom},
		{"", model.TagCustom},
		{"readings", model.TagCustom},
	}

	for _, tt := range tests {
		if got := model.ClassifyTag(tt.tag); got != tt.want {
			t.Errorf("ClassifyTag(%q) = %v, want %v", tt.tag, got, tt.want)
		}
	}
}

func TestValidateTag_WordCount(t *testing.T) {
	if err := model.ValidateTag("a b c"); err != nil {
		t.Errorf("3-word tag should pass, got %v", err)
	}

	err := model.ValidateTag("a b c d")
	if err == nil {
		t.Fatal("4-word tag should fail")
	}
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if verr.Message != "custom tags can be at most 3 words" {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestValidateTag_WhitespaceTokens(t *testing.T) {
	// Extra whitespace must not inflate the word count
	if err := model.ValidateTag("  a   b  c  "); err != nil {
		t.Errorf("expected 3 words after discarding empty tokens, got %v", err)
	}
}

func TestTagWordCount(t *testing.T) {
	tests := []struct {
		tag  string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two", 2},
		{"one  two\tthree", 3},
	}
	for _, tt := range tests {
		if got := model.TagWordCount(tt.tag); got != tt.want {
			t.Errorf("TagWordCount(%q) = %d, want %d", tt.tag, got, tt.want)
		}
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"HTTPS://EXAMPLE.COM", "HTTPS://EXAMPLE.COM"},
		{"ftp.example.com", "https://ftp.example.com"},
	}
	for _, tt := range tests {
		if got := model.NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTagColor(t *testing.T) {
	if model.TagColor("Work") != model.TagColor("work") {
		t.Error("preset color lookup should be case-insensitive")
	}
	if model.TagColor("work") == model.TagColor("something else") {
		t.Error("preset and custom tags should not share a color")
	}
}

func TestTagKey(t *testing.T) {
	if got := model.TagKey("abc123"); got != "tag-abc123" {
		t.Errorf("expected tag-abc123, got %q", got)
	}
}
