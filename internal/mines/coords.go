package mines

// OutOfBounds is the index returned for a neighbor that falls outside
// the board. It is never a valid tile index.
const OutOfBounds = -1

// neighborOffsets enumerates the 8 surrounding tiles, diagonals
// included.
var neighborOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func IndexToXY(index, width int) (x, y int) {
	x = index % width
	y = (index - x) / width
	return
}

func XYToIndex(x, y, width int) int {
	return y*width + x
}

// RelativeIndex resolves the tile dx:dy away from index, or
// [OutOfBounds] when the offset leaves the board. It never panics.
func RelativeIndex(index, width, height, dx, dy int) int {
	x, y := IndexToXY(index, width)
	x, y = x+dx, y+dy
	if x < 0 || x >= width || y < 0 || y >= height {
		return OutOfBounds
	}
	return XYToIndex(x, y, width)
}
