package util

import "github.com/asecurityteam/rolling"

func CreateRollingWindow(size int) *rolling.PointPolicy {
	return rolling.NewPointPolicy(rolling.NewWindow(size))
}

// WindowAvg returns the average of the last count values appended to the window, or 0 if count is 0.
// Unused slots of a rolling window hold 0, so count has to be tracked by the caller.
func WindowAvg(window *rolling.PointPolicy, count int) float64 {
	if count <= 0 {
		return 0
	}
	return window.Reduce(rolling.Sum) / float64(count)
}
