package layout

import "testing"

func TestCalculateListHeight(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name           string
		terminalHeight int
		want           int
	}{
		{"normal terminal", 24, 17},               // 24 - 7 = 17
		{"large terminal", 50, 43},                // 50 - 7 = 43
		{"small terminal enforces min", 8, 5},     // 8 - 7 = 1, min is 5
		{"exactly at reduction", 7, 5},            // 7 - 7 = 0, min is 5
		{"terminal smaller than reduction", 4, 5}, // negative clamps to min
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateListHeight(tt.terminalHeight, cfg)
			if got != tt.want {
				t.Errorf("CalculateListHeight(%d) = %d, want %d",
					tt.terminalHeight, got, tt.want)
			}
		})
	}
}

func TestCalculateRowWidth(t *testing.T) {
	cfg := DefaultConfig().List

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"normal width", 80, 76},   // 80 - 4 = 76
		{"narrow terminal", 10, 6}, // 10 - 4 = 6
		{"tiny terminal clamps", 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRowWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateRowWidth(%d) = %d, want %d",
					tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculateViewportOffset(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		total    int
		height   int
		want     int
	}{
		{"all rows fit", 3, 10, 20, 0},
		{"selection at top", 0, 50, 10, 0},
		{"selection centered", 25, 50, 10, 20}, // 25 - 10/2 = 20
		{"selection near end clamps", 48, 50, 10, 40},
		{"selection at end", 49, 50, 10, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateViewportOffset(tt.selected, tt.total, tt.height)
			if got != tt.want {
				t.Errorf("CalculateViewportOffset(%d, %d, %d) = %d, want %d",
					tt.selected, tt.total, tt.height, got, tt.want)
			}
		})
	}
}

func TestCalculateVisibleRange(t *testing.T) {
	tests := []struct {
		name       string
		maxVisible int
		selected   int
		total      int
		wantStart  int
		wantEnd    int
	}{
		{"all fit", 10, 2, 5, 0, 5},
		{"selection inside first page", 5, 2, 20, 0, 5},
		{"selection past first page", 5, 7, 20, 3, 8},
		{"selection at last row", 5, 19, 20, 15, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleRange(tt.maxVisible, tt.selected, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("CalculateVisibleRange(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.maxVisible, tt.selected, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
