package draw

import (
	"math"
	"slices"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Shapes are given in logical (field) coordinates and scaled to
// terminal sub-pixels.
type Canvas struct {
	termWidth      int    // terminal columns
	termHeight     int    // terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y * termWidth + x]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // subPixelHeight / logicalHeight

	// 0-based offsets of the render area when the terminal is larger than
	// the maximum render size.
	offsetCol int
	offsetRow int

	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that maps a logicalWidth x logicalHeight
// coordinate space onto termWidth x termHeight cells.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions, keeping the logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = termHeight * 2
		c.pixels = make([]bool, c.subPixelHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalWidth
	c.scaleY = float64(c.subPixelHeight) / c.logicalHeight
}

// SetOffset sets the 0-based column and row where the render area starts.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the sub-pixel at terminal coordinates (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets the pixel under a logical point.
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// DrawLine draws a logical-space line with Bresenham's algorithm.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a closed polygon, filling it with a scanline pass when
// filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fillPolygon(points)
	}
	n := len(points)
	for i := range n {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// DrawPolyline draws connected segments without closing the shape.
func (c *Canvas) DrawPolyline(points []Point) {
	for i := 1; i < len(points); i++ {
		c.DrawLine(points[i-1], points[i])
	}
}

// DrawCircle approximates a circle with a regular polygon whose side count
// grows with the on-screen radius.
func (c *Canvas) DrawCircle(center Point, r float64, filled bool) {
	if r <= 0 {
		c.SetFloat(center.X, center.Y)
		return
	}
	sides := int(math.Ceil(r * max(c.scaleX, c.scaleY) * 2))
	sides = min(max(sides, 6), 48)
	pts := c.BorrowPoints(sides)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(sides)
		pts[i] = Point{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	c.DrawPolygon(pts, filled)
}

// fillPolygon fills a polygon with a scanline pass in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]
	for i, p := range points {
		scaled[i] = Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	n := len(scaled)
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		for i := range n {
			p1, p2 := scaled[i], scaled[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = xs
		slices.Sort(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes every non-empty cell to cw as a half-block character. Runs
// of adjacent cells share one cursor move.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := range c.termHeight {
		top := row * 2 * c.termWidth
		bottom := top + c.termWidth
		cursor := -1
		for col := range c.termWidth {
			var ch rune
			switch up, down := c.pixels[top+col], c.pixels[bottom+col]; {
			case up && down:
				ch = BlockFull
			case up:
				ch = BlockUpperHalf
			case down:
				ch = BlockLowerHalf
			default:
				continue
			}
			if cursor != col {
				cw.MoveCursor(col+1, row+1)
			}
			cw.WriteRune(ch)
			cursor = col + 1
		}
	}
}

// RenderBorder frames the render area when the terminal is larger than it.
// Horizontal bars need a row offset, vertical bars a column offset.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1
	bar := strings.Repeat("─", c.termWidth)

	// Positions relative to the render area; the writer adds the offset.
	if hasV {
		if hasH {
			cw.WriteAt(0, 0, "┌"+bar+"┐")
			cw.WriteAt(0, c.termHeight+1, "└"+bar+"┘")
		} else {
			cw.WriteAt(1, 0, bar)
			cw.WriteAt(1, c.termHeight+1, bar)
		}
	}
	if hasH {
		for row := 1; row <= c.termHeight; row++ {
			cw.WriteAt(0, row, "│")
			cw.WriteAt(c.termWidth+1, row, "│")
		}
	}
}

// TerminalWidth returns the render area's column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the render area's row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts a logical point to a 1-based (col, row) inside
// the render area, for placing text next to drawn shapes.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// Scale returns the logical-to-sub-pixel factors.
func (c *Canvas) Scale() (sx, sy float64) { return c.scaleX, c.scaleY }

// BorrowPoints returns a reusable slice valid until the next call.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
