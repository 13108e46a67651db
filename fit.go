package main

import "math"

// maxFitPasses bounds the refinement loop in Fit
const maxFitPasses = 8

// ScreenBounds is the native resolution of the primary display, captured once at startup.
type ScreenBounds struct {
	Width  int
	Height int
}

// FitResult describes how a picture is shown on screen.
type FitResult struct {
	Scale     float64 // Accumulated factor applied to the native size, never above 1
	Width     int     // Scaled width in pixels
	Height    int     // Scaled height in pixels
	Oversized bool    // The native size did not fit the screen
	Passes    int     // Refinement passes used
}

// reductionFactor returns the factor that makes the limiting axis of a w×h
// picture meet the screen bound. The limiting axis is the one with the
// smaller screen/picture ratio. The result is clamped to 1.
func reductionFactor(w, h int, screen ScreenBounds) float64 {
	fw := float64(screen.Width) / float64(w)
	fh := float64(screen.Height) / float64(h)
	return math.Min(1, math.Min(fw, fh))
}

// Fit scales a width×height picture down, never up, until it lies entirely
// within screen, keeping its aspect ratio. Each pass feeds the previous
// pass's rounded size back in, so a dimension left one pixel over the
// bound is corrected by another pass.
func Fit(width, height int, screen ScreenBounds) FitResult {
	result := FitResult{Scale: 1, Width: width, Height: height}
	if width <= 0 || height <= 0 || screen.Width <= 0 || screen.Height <= 0 {
		return result
	}

	w, h := width, height
	for {
		factor := reductionFactor(w, h, screen)
		if factor < 1 {
			result.Oversized = true
			w = max(1, int(math.Round(float64(w)*factor)))
			h = max(1, int(math.Round(float64(h)*factor)))
			result.Scale *= factor
		}
		result.Passes++

		if (w <= screen.Width && h <= screen.Height) || result.Passes >= maxFitPasses {
			break
		}
	}

	if w > screen.Width || h > screen.Height {
		// Did not converge; fall back to the closed form.
		result.Scale = reductionFactor(width, height, screen)
		w = min(screen.Width, max(1, int(math.Round(float64(width)*result.Scale))))
		h = min(screen.Height, max(1, int(math.Round(float64(height)*result.Scale))))
	}

	result.Width, result.Height = w, h
	return result
}

// centerOffset returns the top-left position that centers a w×h window on screen.
func centerOffset(w, h int, screen ScreenBounds) (int, int) {
	return screen.Width/2 - w/2, screen.Height/2 - h/2
}
