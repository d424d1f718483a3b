//go:build !race

package spiral_test

// raceEnabled reports whether the race detector instruments this build.
const raceEnabled = false
