// Package camera provides the side-scrolling viewport and the camera-relative
// bands that drive active-window culling.
package camera

// Camera tracks the lateral scroll position. The active band is a fraction of
// the visible extent on each side of the camera center; the retention band
// extends it by a margin within which entities stay alive but frozen.
type Camera struct {
	// X is the camera center in world coordinates.
	X float32

	// Viewport dimensions (screen size).
	ViewportW, ViewportH float32

	// BandFraction scales the visible extent into the active band.
	BandFraction float32

	// RetentionMargin extends the band for entity retention.
	RetentionMargin float32

	// FollowLerp is the per-frame catch-up factor toward the target.
	FollowLerp float32
}

// New creates a camera centered on the given position.
func New(x, viewportW, viewportH, bandFraction, retentionMargin, followLerp float32) *Camera {
	return &Camera{
		X:               x,
		ViewportW:       viewportW,
		ViewportH:       viewportH,
		BandFraction:    bandFraction,
		RetentionMargin: retentionMargin,
		FollowLerp:      followLerp,
	}
}

// Follow eases the camera toward the target. The camera may move backward
// during brief animations (knockback, ride dismount); culling must stay
// correct under non-monotonic motion.
func (c *Camera) Follow(targetX float32) {
	c.X += (targetX - c.X) * c.FollowLerp
}

// Snap centers the camera on the target immediately.
func (c *Camera) Snap(targetX float32) {
	c.X = targetX
}

// Band returns the active-window bounds around the camera center.
func (c *Camera) Band() (lower, upper float32) {
	half := c.ViewportW * c.BandFraction
	return c.X - half, c.X + half
}

// RetentionBand returns the wider band within which entities are retained.
func (c *Camera) RetentionBand() (lower, upper float32) {
	lower, upper = c.Band()
	return lower - c.RetentionMargin, upper + c.RetentionMargin
}

// WorldToScreen converts world coordinates to screen coordinates. World Y is
// height above the water line; the water line sits at 70% of screen height.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx - c.X)
	sy = c.ViewportH*0.7 - wy
	return sx, sy
}

// ScreenToWorld inverts WorldToScreen, for mouse input.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx - c.ViewportW/2)
	wy = c.ViewportH*0.7 - sy
	return wx, wy
}

// IsVisible returns true if a point with the given half-extent could be on
// screen (conservative check for drawing).
func (c *Camera) IsVisible(wx, half float32) bool {
	d := wx - c.X
	if d < 0 {
		d = -d
	}
	return d <= c.ViewportW/2+half
}
