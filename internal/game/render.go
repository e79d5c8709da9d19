package game

import (
	"math"

	"github.com/luxa-club/luxa/internal/draw"
)

// blinkFrequency is the invincibility blink rate in toggles per second.
const blinkFrequency = 10.0

// Render draws a snapshot onto the canvas. The snapshot is read-only; the
// simulation may already be stepping the next frame.
func Render(snap *Snapshot, canvas *draw.Canvas) {
	canvas.Clear()

	for _, t := range snap.Trail {
		// Fade the trail by degrading the drawn detail with opacity.
		switch {
		case t.Opacity > 0.66:
			canvas.FillCircle(t.X, t.Y, t.Radius)
		case t.Opacity > 0.33:
			canvas.DrawCircle(t.X, t.Y, t.Radius)
		default:
			canvas.SetFloat(t.X, t.Y)
		}
	}

	for _, c := range snap.Coins {
		canvas.DrawCircle(c.X, c.Y, c.Radius)
	}
	for _, o := range snap.Obstacles {
		drawSquare(canvas, o.X, o.Y, o.Radius)
	}
	for _, e := range snap.Enemies {
		canvas.DrawCircle(e.X, e.Y, e.Radius)
	}
	for _, p := range snap.Projectiles {
		canvas.FillCircle(p.X, p.Y, p.Radius)
	}

	if shouldRenderPlayer(snap) {
		canvas.FillCircle(snap.Player.X, snap.Player.Y, snap.Player.Radius)
	}
}

// shouldRenderPlayer blinks the player while invincible.
func shouldRenderPlayer(snap *Snapshot) bool {
	if !snap.Player.Invincible {
		return true
	}
	phase := int(float64(snap.Frame) / TargetFPS * blinkFrequency)
	return phase%2 == 0
}

// drawSquare draws an axis-aligned square outline of half-width r.
func drawSquare(canvas *draw.Canvas, x, y, r float64) {
	pts := canvas.BorrowPoints(4)
	pts[0] = draw.Point{X: x - r, Y: y - r}
	pts[1] = draw.Point{X: x + r, Y: y - r}
	pts[2] = draw.Point{X: x + r, Y: y + r}
	pts[3] = draw.Point{X: x - r, Y: y + r}
	canvas.DrawPolygon(pts)
}

// FitCanvas computes the largest render area with the field's aspect ratio
// that fits the terminal, and the offsets that center it. Terminal cells are
// half the height of a logical unit pair, so the aspect uses height/2.
func FitCanvas(termWidth, termHeight int, logicalW, logicalH float64) (w, h, offCol, offRow int) {
	if termWidth < 2 || termHeight < 2 {
		return termWidth, termHeight, 0, 0
	}
	aspect := logicalW / (logicalH / 2)

	w = termWidth
	h = int(math.Round(float64(w) / aspect))
	if h > termHeight {
		h = termHeight
		w = int(math.Round(float64(h) * aspect))
	}
	offCol = (termWidth - w) / 2
	offRow = (termHeight - h) / 2
	return w, h, offCol, offRow
}
