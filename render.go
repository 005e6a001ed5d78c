package animgen

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// AnimationName is the keyframe identifier shared by every output.
	AnimationName = "custom-animation"
	// TimingFunction is the easing written into the animation shorthand.
	TimingFunction = "ease-in-out"
	// InfiniteToken replaces an IterationCount of 0.
	InfiniteToken = "infinite"
	// IdentityTransform is the fixed 0% keyframe state.
	IdentityTransform = "translate(0px, 0px) rotate(0deg) scale(1)"
)

// Style is an inline style descriptor for a live preview element.
type Style struct {
	Animation string `json:"animation"`
	Transform string `json:"transform"`
}

// String renders the style as inline CSS declarations.
func (s Style) String() string {
	return fmt.Sprintf("animation: %s; transform: %s;", s.Animation, s.Transform)
}

// Artifacts bundles every rendering of one Params value.
type Artifacts struct {
	Keyframes string
	Config    string
	Classes   string
	Preview   Style
}

// Render produces all outputs for p.
func Render(p Params) Artifacts {
	return Artifacts{
		Keyframes: Keyframes(p),
		Config:    ConfigExtension(p),
		Classes:   UtilityClasses(p),
		Preview:   PreviewStyle(p),
	}
}

// ScaleFactor converts ScalePercent to the shortest exact decimal (150 → "1.5", 100 → "1").
func ScaleFactor(p Params) string {
	return strconv.FormatFloat(float64(p.ScalePercent)/100, 'f', -1, 64)
}

// Transform returns the 100% keyframe transform.
func Transform(p Params) string {
	return fmt.Sprintf("translate(%dpx, %dpx) rotate(%ddeg) scale(%s)",
		p.TranslateXPx, p.TranslateYPx, p.RotateDeg, ScaleFactor(p))
}

// IterationToken returns "infinite" for 0, otherwise the decimal count.
func IterationToken(p Params) string {
	if p.IterationCount == 0 {
		return InfiniteToken
	}
	return strconv.Itoa(p.IterationCount)
}

// Shorthand returns the animation shorthand: name, duration, timing, delay, iterations.
func Shorthand(p Params) string {
	return fmt.Sprintf("%s %dms %s %dms %s",
		AnimationName, p.DurationMs, TimingFunction, p.DelayMs, IterationToken(p))
}

// Keyframes renders the CSS @keyframes rule.
func Keyframes(p Params) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@keyframes %s {\n", AnimationName)
	fmt.Fprintf(&b, "  0%% {\n    transform: %s;\n  }\n", IdentityTransform)
	fmt.Fprintf(&b, "  100%% {\n    transform: %s;\n  }\n", Transform(p))
	b.WriteString("}")
	return b.String()
}

// ConfigExtension renders a Tailwind config that registers the keyframes and
// an animation utility under theme.extend.
func ConfigExtension(p Params) string {
	var b strings.Builder
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")
	b.WriteString("      keyframes: {\n")
	fmt.Fprintf(&b, "        '%s': {\n", AnimationName)
	fmt.Fprintf(&b, "          '0%%': {\n            transform: '%s',\n          },\n", IdentityTransform)
	fmt.Fprintf(&b, "          '100%%': {\n            transform: '%s',\n          },\n", Transform(p))
	b.WriteString("        },\n")
	b.WriteString("      },\n")
	b.WriteString("      animation: {\n")
	fmt.Fprintf(&b, "        '%s': '%s',\n", AnimationName, Shorthand(p))
	b.WriteString("      },\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("}")
	return b.String()
}

// UtilityClasses renders the class attribute applying the animation.
func UtilityClasses(p Params) string {
	iteration := "animate-" + InfiniteToken
	if p.IterationCount != 0 {
		iteration = fmt.Sprintf("animate-[%d]", p.IterationCount)
	}
	return fmt.Sprintf(`className="animate-%s duration-[%dms] delay-[%dms] %s"`,
		AnimationName, p.DurationMs, p.DelayMs, iteration)
}

// PreviewStyle returns the inline style a preview element needs. Its Transform
// matches the 100% state of Keyframes byte for byte.
func PreviewStyle(p Params) Style {
	return Style{
		Animation: Shorthand(p),
		Transform: Transform(p),
	}
}
