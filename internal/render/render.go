// Package render draws loop snapshots to an ANSI terminal. It reads only the
// snapshot: entity poses, HUD values and the session mode.
package render

import (
	"io"
	"math"

	"github.com/tomz197/logastroids/internal/draw"
	"github.com/tomz197/logastroids/internal/loop"
	"github.com/tomz197/logastroids/internal/object"
)

// Render area limits in terminal cells.
const (
	MaxTermWidth  = 240
	MaxTermHeight = 90
)

// DirectionFrames is the number of discrete facings a rotation snaps to.
const DirectionFrames = 24

// DirectionFrame quantizes a rotation in degrees to one of 24 facings of 15
// degrees each.
func DirectionFrame(rotation float64) int {
	f := int(math.Floor(rotation/15)) % DirectionFrames
	if f < 0 {
		f += DirectionFrames
	}
	return f
}

// frameAngle is the rotation a facing is drawn at.
func frameAngle(frame int) float64 {
	return float64(frame) * 360 / DirectionFrames
}

// Renderer owns the canvas and output buffer of one terminal.
type Renderer struct {
	canvas *draw.Canvas
	cw     *draw.ChunkWriter
	size   draw.TermSizeFunc
	field  object.Field
	termW  int
	termH  int
}

// New creates a renderer for a field of the given size. A nil size function
// reads os.Stdout.
func New(w io.Writer, size draw.TermSizeFunc, field object.Field) *Renderer {
	if size == nil {
		size = draw.DefaultTermSizeFunc
	}
	r := &Renderer{
		cw:    draw.NewChunkWriter(w, 0, 0),
		size:  size,
		field: field,
	}
	r.canvas = draw.NewScaledCanvas(1, 1, field.Width, field.Height)
	r.resize()
	return r
}

// fitTerm picks the largest render area that keeps the field's aspect ratio
// (one cell is two sub-pixels tall) and centers it in the terminal.
func fitTerm(termW, termH int, field object.Field) (w, h, offCol, offRow int) {
	w = min(termW, MaxTermWidth)
	h = min(termH, MaxTermHeight)
	if field.Width > 0 && field.Height > 0 {
		aspect := field.Width / field.Height
		if want := int(math.Round(float64(h) * 2 * aspect)); want < w {
			w = want
		} else {
			h = int(math.Round(float64(w) / aspect / 2))
		}
	}
	w, h = max(w, 1), max(h, 1)
	return w, h, (termW - w) / 2, (termH - h) / 2
}

func (r *Renderer) resize() {
	tw, th, err := r.size()
	if err != nil || (tw == r.termW && th == r.termH) {
		return
	}
	r.termW, r.termH = tw, th
	w, h, offCol, offRow := fitTerm(tw, th, r.field)
	r.canvas.Resize(w, h)
	r.canvas.SetOffset(offCol, offRow)
	r.cw.SetOffset(offCol, offRow)
}

// Begin prepares the terminal: cursor hidden, screen cleared.
func (r *Renderer) Begin() error {
	r.cw.HideCursor()
	r.cw.Clear()
	return r.cw.Flush()
}

// End restores the cursor and clears the screen.
func (r *Renderer) End() error {
	r.cw.Clear()
	r.cw.SetOffset(0, 0)
	r.cw.MoveCursor(1, 1)
	r.cw.ShowCursor()
	return r.cw.Flush()
}

// Draw renders one frame.
func (r *Renderer) Draw(snap loop.Snapshot) error {
	r.compose(snap)
	return r.cw.Flush()
}

func (r *Renderer) compose(snap loop.Snapshot) {
	r.resize()
	r.cw.Clear()
	r.canvas.Clear()
	for _, p := range snap.Entities {
		r.drawWrapped(p, snap.Frame)
	}
	r.canvas.Render(r.cw)
	r.canvas.RenderBorder(r.cw)
	r.drawLabels(snap)
	r.drawOverlay(snap)
}

// drawWrapped draws a pose plus its copies across the edges it straddles.
func (r *Renderer) drawWrapped(p object.Pose, frame uint64) {
	reach := p.Radius * 1.5
	xs := []float64{0}
	ys := []float64{0}
	if p.X-reach < 0 {
		xs = append(xs, r.field.Width)
	} else if p.X+reach > r.field.Width {
		xs = append(xs, -r.field.Width)
	}
	if p.Y-reach < 0 {
		ys = append(ys, r.field.Height)
	} else if p.Y+reach > r.field.Height {
		ys = append(ys, -r.field.Height)
	}
	// Bodies still entering from beyond the edge are not wrapped.
	if p.Entering {
		xs, ys = xs[:1], ys[:1]
	}
	for _, dx := range xs {
		for _, dy := range ys {
			q := p
			q.X += dx
			q.Y += dy
			r.drawPose(q, frame)
		}
	}
}

func (r *Renderer) drawPose(p object.Pose, frame uint64) {
	switch p.Kind {
	case object.KindShip:
		r.drawShip(p, frame)
	case object.KindAsteroid:
		r.drawAsteroid(p)
	case object.KindBullet:
		r.drawBullet(p)
	case object.KindRocket:
		r.drawRocket(p)
	case object.KindPowerUp:
		r.drawPowerUp(p, frame)
	case object.KindExplosion:
		r.drawExplosion(p)
	case object.KindBoss:
		r.drawBoss(p)
	case object.KindFireball:
		r.drawFireball(p, frame)
	}
}
