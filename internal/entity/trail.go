package entity

// TrailSegment is a fading afterimage left behind by a rolling player.
// Purely visual: it takes part in no collision checks.
type TrailSegment struct {
	X, Y    float64
	Size    float64
	Opacity float64 // 1.0 at spawn, removed at 0
	fade    float64 // opacity decrement per baseline frame
}

// NewTrailSegment creates a fully opaque trail segment.
func NewTrailSegment(x, y, size, fade float64) *TrailSegment {
	return &TrailSegment{X: x, Y: y, Size: size, Opacity: 1, fade: fade}
}

// Update fades the segment; it is removed once fully transparent.
func (t *TrailSegment) Update(ctx UpdateContext) (bool, error) {
	t.Opacity -= t.fade * ctx.DT
	return t.Opacity <= 0, nil
}
