//go:build race

package opt

// Race reports whether the binary was built with the race detector.
// Race builds instrument every memory access, so map timings are inflated
// by an order of magnitude and are not comparable with normal builds.
const Race = true
