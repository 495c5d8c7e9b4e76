package engine

// Line is one row or column oriented so that index 0 is the direction of travel.
type Line [Size]int

// LineResult is the outcome of collapsing a single line.
type LineResult struct {
	Line    Line
	Changed bool
	Score   int
	Merges  int
}

// TransformLine slides a line toward index 0 and merges equal neighbours.
// Zeros are compacted out first, then a single left-to-right pass merges
// each equal pair once. A merged tile never merges again in the same pass,
// so [2,2,2,2] becomes [4,4,0,0].
func TransformLine(line Line) LineResult {
	var compact [Size]int
	n := 0
	for _, v := range line {
		if v != 0 {
			compact[n] = v
			n++
		}
	}

	var res LineResult
	write := 0
	for i := 0; i < n; i++ {
		if i+1 < n && compact[i] == compact[i+1] {
			merged := compact[i] * 2
			res.Line[write] = merged
			res.Score += merged
			res.Merges++
			i++
		} else {
			res.Line[write] = compact[i]
		}
		write++
	}

	// Trailing zeros come from the zero value of res.Line.
	res.Changed = res.Merges > 0 || res.Line != line
	return res
}
