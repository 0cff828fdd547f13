// Package draw renders vector shapes to ANSI terminals with half-block
// characters and batches the output for slow links such as SSH.
package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Point is a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockLight     = '░'
)

// maxChunkSize keeps single writes under a typical MTU.
const maxChunkSize = 1400

// ANSI sequences used by the renderer.
const (
	seqClear      = "\033[H\033[2J"
	seqHideCursor = "\033[?25l"
	seqShowCursor = "\033[?25h"
	seqBold       = "\033[1m"
	seqReverse    = "\033[7m"
	seqReset      = "\033[0m"
)

// ChunkWriter accumulates a frame of terminal output and writes it in
// MTU-sized chunks. Cursor coordinates are 1-based and shifted by the
// configured offset.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer
	numBuf [20]byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter over w.
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset after a resize.
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends a cursor position sequence.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	return cw.buf.Write(p)
}

// WriteString appends s.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteRune appends r.
func (cw *ChunkWriter) WriteRune(r rune) {
	cw.buf.WriteRune(r)
}

// WriteAt writes s starting at (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteCentered writes s centered on col. Attribute sequences do not count
// toward the width.
func (cw *ChunkWriter) WriteCentered(col, row int, s string) {
	cw.WriteAt(max(col-VisibleWidth(s)/2, 1), row, s)
}

// VisibleWidth counts the runes of s outside SGR escape sequences.
func VisibleWidth(s string) int {
	n := 0
	for i := 0; i < len(s); {
		if s[i] == '\033' {
			if end := strings.IndexByte(s[i:], 'm'); end >= 0 {
				i += end + 1
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		n++
	}
	return n
}

// Bold and Reverse wrap s in the matching attribute.
func Bold(s string) string    { return seqBold + s + seqReset }
func Reverse(s string) string { return seqReverse + s + seqReset }

// Clear appends a full screen clear.
func (cw *ChunkWriter) Clear() { cw.buf.WriteString(seqClear) }

// HideCursor appends the hide-cursor sequence.
func (cw *ChunkWriter) HideCursor() { cw.buf.WriteString(seqHideCursor) }

// ShowCursor appends the show-cursor sequence.
func (cw *ChunkWriter) ShowCursor() { cw.buf.WriteString(seqShowCursor) }

// Len returns the number of pending bytes.
func (cw *ChunkWriter) Len() int { return cw.buf.Len() }

// Flush writes the pending frame in chunks and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// String returns the pending frame without flushing it.
func (cw *ChunkWriter) String() string { return cw.buf.String() }

// TermSizeFunc reports terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
