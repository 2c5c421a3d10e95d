package layout

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "hello", "hello"},
		{"color codes removed", "\x1b[31mred\x1b[0m", "red"},
		{"multiple codes", "\x1b[1m\x1b[34mbold blue\x1b[0m end", "bold blue end"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain", "hello", 5},
		{"styled", "\x1b[31mred\x1b[0m", 3},
		{"unicode", "\x1b[1mäöü\x1b[0m", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VisibleLength(tt.input)
			if got != tt.want {
				t.Errorf("VisibleLength(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name          string
		text          string
		maxWidth      int
		want          string
		wantTruncated bool
	}{
		{"fits exactly", "hello", 5, "hello", false},
		{"shorter than max", "hi", 10, "hi", false},
		{"needs truncation", "hello world", 8, "hello...", true},
		{"max smaller than ellipsis", "hello", 2, "..", true},
		{"zero width", "hello", 0, "", true},
		{"unicode truncation", "ürümqi travel guide", 10, "ürümqi ...", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			if got != tt.want || truncated != tt.wantTruncated {
				t.Errorf("TruncateText(%q, %d) = (%q, %v), want (%q, %v)",
					tt.text, tt.maxWidth, got, truncated, tt.want, tt.wantTruncated)
			}
		})
	}
}
