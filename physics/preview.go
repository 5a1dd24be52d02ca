package physics

import "github.com/pixelfilm44/StuntFrogsRunner-sub005/config"

// Preview simulates the hop a committed launch would perform and returns a
// fixed number of sample points for display. It steps with the simulation dt
// and the same constants as the executed hop, stopping at the first step where
// the height reaches zero, so the preview always matches the jump a release
// would commit. Returns nil when the drag is inside the dead zone.
func Preview(p *config.PhysicsConfig, drag Vec2, distanceMultiplier float32, origin Vec2) []Vec2 {
	launch, ok := ComputeLaunch(p, drag, distanceMultiplier)
	if !ok {
		return nil
	}

	dt := float32(p.DT)
	path := make([]Vec2, 0, int(launch.Duration/dt)+2)
	path = append(path, Vec2{X: origin.X, Y: origin.Y})
	for t := dt; ; t += dt {
		h := HeightAt(launch, t)
		if h <= 0 {
			// Land exactly on the arc endpoint rather than below it.
			path = append(path, Vec2{X: LandingX(launch, origin.X), Y: origin.Y})
			break
		}
		path = append(path, Vec2{X: origin.X + launch.HorizontalVel*t, Y: origin.Y + h})
	}

	return resample(path, p.PreviewPoints)
}

// resample picks n evenly spaced points from path, keeping both endpoints.
func resample(path []Vec2, n int) []Vec2 {
	if n <= 0 || len(path) == 0 {
		return nil
	}
	if len(path) <= n {
		return path
	}
	if n == 1 {
		return []Vec2{path[len(path)-1]}
	}
	out := make([]Vec2, n)
	last := len(path) - 1
	for i := 0; i < n; i++ {
		idx := i * last / (n - 1)
		out[i] = path[idx]
	}
	return out
}
