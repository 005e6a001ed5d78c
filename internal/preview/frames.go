package preview

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fogleman/ease"
	"github.com/yacobolo/animgen"
)

// Frame is the interpolated state of one iteration at a point in time.
type Frame struct {
	TimeMs    int     // Offset from animation start, including delay
	Progress  float64 // Linear progress through the iteration, 0..1
	Eased     float64 // Progress after the timing function
	Transform string  // CSS transform at this frame
}

// timing maps CSS timing keywords to easing curves. The cubic-bezier
// keywords are approximated by polynomial curves.
var timing = map[string]func(float64) float64{
	"linear":      func(t float64) float64 { return t },
	"ease":        ease.InOutQuad,
	"ease-in":     ease.InQuad,
	"ease-out":    ease.OutQuad,
	"ease-in-out": ease.InOutCubic,
}

// Easing returns the easing curve for a CSS timing keyword.
func Easing(name string) (func(float64) float64, bool) {
	fn, ok := timing[name]
	return fn, ok
}

// Sample returns n+1 evenly spaced frames of one iteration, from the 0%
// state to the 100% state, eased with the shorthand's timing function.
func Sample(p animgen.Params, n int) []Frame {
	if n < 1 {
		n = 1
	}
	curve, _ := Easing(animgen.TimingFunction)

	frames := make([]Frame, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		e := curve(t)
		frames = append(frames, Frame{
			TimeMs:    p.DelayMs + int(math.Round(t*float64(p.DurationMs))),
			Progress:  t,
			Eased:     e,
			Transform: interpolate(p, e),
		})
	}
	return frames
}

// interpolate blends the identity transform toward the 100% state.
// The endpoints reproduce the keyframe strings exactly.
func interpolate(p animgen.Params, e float64) string {
	if e <= 0 {
		return animgen.IdentityTransform
	}
	if e >= 1 {
		return animgen.Transform(p)
	}
	scale := 1 + (float64(p.ScalePercent)/100-1)*e
	return fmt.Sprintf("translate(%spx, %spx) rotate(%sdeg) scale(%s)",
		formatNumber(float64(p.TranslateXPx)*e),
		formatNumber(float64(p.TranslateYPx)*e),
		formatNumber(float64(p.RotateDeg)*e),
		formatNumber(scale))
}

// formatNumber rounds to two decimals and drops trailing zeros
func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
