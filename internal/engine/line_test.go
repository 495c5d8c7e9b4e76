package engine

import "testing"

func TestTransformLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		changed  bool
		score    int
		merges   int
	}{
		{
			name:     "simple merge",
			input:    Line{2, 2, 0, 0},
			expected: Line{4, 0, 0, 0},
			changed:  true,
			score:    4,
			merges:   1,
		},
		{
			name:     "merge with trailing tile",
			input:    Line{2, 2, 2, 0},
			expected: Line{4, 2, 0, 0},
			changed:  true,
			score:    4,
			merges:   1,
		},
		{
			name:     "double merge",
			input:    Line{2, 2, 2, 2},
			expected: Line{4, 4, 0, 0},
			changed:  true,
			score:    8,
			merges:   2,
		},
		{
			name:     "no merge possible",
			input:    Line{2, 4, 8, 16},
			expected: Line{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    Line{0, 0, 2, 2},
			expected: Line{4, 0, 0, 0},
			changed:  true,
			score:    4,
			merges:   1,
		},
		{
			name:     "merge across gaps",
			input:    Line{2, 0, 0, 2},
			expected: Line{4, 0, 0, 0},
			changed:  true,
			score:    4,
			merges:   1,
		},
		{
			name:     "already packed",
			input:    Line{4, 2, 0, 0},
			expected: Line{4, 2, 0, 0},
		},
		{
			name:     "empty line",
			input:    Line{0, 0, 0, 0},
			expected: Line{0, 0, 0, 0},
		},
		{
			name:     "single tile at front",
			input:    Line{8, 0, 0, 0},
			expected: Line{8, 0, 0, 0},
		},
		{
			name:     "single tile slides",
			input:    Line{0, 4, 0, 0},
			expected: Line{4, 0, 0, 0},
			changed:  true,
		},
		{
			name:     "merged tile does not merge again",
			input:    Line{4, 4, 8, 0},
			expected: Line{8, 8, 0, 0},
			changed:  true,
			score:    8,
			merges:   1,
		},
		{
			name:     "three in a row merges the leading pair",
			input:    Line{0, 8, 8, 8},
			expected: Line{16, 8, 0, 0},
			changed:  true,
			score:    16,
			merges:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := TransformLine(tt.input)
			if res.Line != tt.expected {
				t.Errorf("TransformLine(%v) = %v, want %v", tt.input, res.Line, tt.expected)
			}
			if res.Changed != tt.changed {
				t.Errorf("TransformLine(%v) changed = %v, want %v", tt.input, res.Changed, tt.changed)
			}
			if res.Score != tt.score {
				t.Errorf("TransformLine(%v) score = %d, want %d", tt.input, res.Score, tt.score)
			}
			if res.Merges != tt.merges {
				t.Errorf("TransformLine(%v) merges = %d, want %d", tt.input, res.Merges, tt.merges)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] becomes [8, 8, 0, 0], not [16, 0, 0, 0]
	line := Line{4, 4, 4, 4}
	res := TransformLine(line)

	expected := Line{8, 8, 0, 0}
	if res.Line != expected {
		t.Errorf("TransformLine(%v) = %v, want %v (one merge per tile per move)", line, res.Line, expected)
	}

	if res.Score != 16 {
		t.Errorf("TransformLine(%v) score = %d, want 16", line, res.Score)
	}
}
