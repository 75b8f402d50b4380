package life

import "math"

// Space reserved around the grid for surrounding UI chrome.
const (
	PaddingX = 20
	PaddingY = 70
)

// CellSize returns the largest whole-pixel cell edge that fits a cols×rows
// grid into the viewport after padding. The tighter axis wins.
func CellSize(viewportWidth, viewportHeight, cols, rows int) int {
	w := float64(viewportWidth-PaddingX) / float64(cols)
	h := float64(viewportHeight-PaddingY) / float64(rows)
	return int(math.Floor(math.Min(w, h)))
}

// CellAt maps a pointer position relative to the grid origin to grid
// coordinates. ok is false when the position lies outside the grid.
func CellAt(x, y, size, rows, cols int) (r, c int, ok bool) {
	if size <= 0 || x < 0 || y < 0 {
		return 0, 0, false
	}
	r, c = y/size, x/size
	if r >= rows || c >= cols {
		return 0, 0, false
	}
	return r, c, true
}
