// Package animgen generates CSS animation code from a small set of parameters.
//
// A single Params value describes an animation: timing (duration, delay,
// iteration count) and the transform reached at 100% (translate, rotate,
// scale). The 0% state is always the identity transform.
//
// # Rendering
//
// Every renderer is a pure function of its Params argument:
//
//	p := animgen.DefaultParams()
//	p.TranslateXPx = 50
//	p.ScalePercent = 150
//
//	css := animgen.Keyframes(p)            // @keyframes custom-animation { ... }
//	cfg := animgen.ConfigExtension(p)      // module.exports = { theme: { extend: ... } }
//	cls := animgen.UtilityClasses(p)       // className="animate-custom-animation ..."
//	style := animgen.PreviewStyle(p)       // inline animation + transform
//
// The three textual outputs always share the animation name and numeric values.
// An IterationCount of 0 means infinite and renders as "infinite" (or
// "animate-infinite" in the class list), never as the digit 0.
//
// # Validation
//
// Renderers never validate. Use NewParams or Params.Validate to reject values
// outside the documented domain, or Params.Clamp to coerce them into it.
//
// # CLI Tool
//
//	go install github.com/yacobolo/animgen/cmd/animgen@latest
package animgen
