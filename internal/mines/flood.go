package mines

// clearFill reveals the connected region of zero-count tiles around
// start plus the single ring of numbered tiles bordering it. Flags on
// revealed tiles are dropped; a reveal is permanent.
//
// Worklist over an explicit stack with a visited arena, so recursion
// depth is never a concern on large boards. Callers must not start a
// fill on a mine.
func (b Board) clearFill(start, width, height int) {
	visited := make([]bool, len(b))
	open := make([]int, 0, len(b))
	open = append(open, start)

	for len(open) > 0 {
		i := open[len(open)-1]
		open = open[:len(open)-1]
		if visited[i] {
			continue
		}
		visited[i] = true

		b[i].Revealed = true
		b[i].Flagged = false

		if b[i].Mine || b[i].Adjacent != 0 {
			// numbered tiles form the frontier and are not expanded
			continue
		}
		for _, d := range neighborOffsets {
			j := RelativeIndex(i, width, height, d[0], d[1])
			if j != OutOfBounds && !visited[j] {
				open = append(open, j)
			}
		}
	}
}
