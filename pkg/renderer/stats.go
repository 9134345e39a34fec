package renderer

import "time"

// RenderStats contains statistics about a completed frame
type RenderStats struct {
	TotalPixels int           // Pixels written, background included
	HitPixels   int           // Pixels whose primary ray hit geometry
	Workers     int           // Worker goroutines used
	Elapsed     time.Duration // Wall-clock render time
}

// HitRatio returns the fraction of pixels covered by geometry
func (rs RenderStats) HitRatio() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.HitPixels) / float64(rs.TotalPixels)
}
