package terrain

import "github.com/tilecraft/geomap/world"

// SampleGradient returns the quantized level of a linear gradient at
// sample, dithering bin boundaries with rng so hard edges in source images
// break up. start maps to level 0 and end to maxLevel; passing them
// reversed inverts the result. maxLevel must be positive and start and end
// at least maxLevel apart.
//
// The two x positions at the bottom of each bin never jitter, leaving
// authors fixed anchor values to paint with. Samples outside [start, end]
// clamp to the boundary levels. Exactly one random draw is consumed per
// call.
func SampleGradient(rng world.RandomSource, sample, maxLevel, start, end int) int {
	// Distance in x between quantized levels, negative when descending.
	xDelta := (end - start) / maxLevel

	if start > end {
		start, end = end, start
	}

	x := sample - start
	if x < 0 {
		x = 0
	}

	// Draw from a range shrunk by a buffer zone on either side, so each
	// bin keeps jitter-free values.
	rand := int(rng.NextRange(uint32(abs(xDelta-2)))) + 1

	jitter := 0
	if x%xDelta > rand {
		jitter = 1
	}

	y := x/abs(xDelta) + jitter
	if y < 0 {
		y = 0
	}
	if y > maxLevel {
		y = maxLevel
	}

	// Flip back if the caller's gradient descends.
	if xDelta < 0 {
		y = maxLevel - y
	}

	return y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
